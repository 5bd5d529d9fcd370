// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/csvscan/csvscan/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations that a single flag validator
// cannot see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.String("out") != "" && c.String("output") != "text" && c.String("output") != "raw" {
		return fmt.Errorf("--out writes CSV text; --output %s is not supported with it", c.String("output"))
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// OutValidator rejects an --out target that is an existing directory.
func OutValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if fi, err := os.Stat(s); err == nil && fi.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}
