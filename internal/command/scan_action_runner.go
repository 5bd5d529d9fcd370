// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/csvscan/csvscan/internal/log"
	"github.com/csvscan/csvscan/internal/output"
	"github.com/csvscan/csvscan/internal/scan"
)

// ScanActionRunner[T] encapsulates the common action pattern for the scan
// subcommands. It handles argument checks, scanner construction, and output
// emission, with the scan itself provided by ScanFn and rendering by EmitFn.
type ScanActionRunner[T any] struct {
	CommandName string
	ScanFn      func(*scan.Scanner, context.Context, string, string) (T, error)
	EmitFn      func(io.Writer, T, output.Options) error
}

// Run executes the scan action with the provided context and command.
func (sar *ScanActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	log.Debugf("Executing %s: args=%v cwd=%s config=%s", m.Subcommand(), m.Args, m.StartingDir, m.Config.Source)

	// Step 2: Positional arguments.
	if cmd.Args().Len() != 2 { //nolint:mnd
		return fmt.Errorf("%s requires <file.csv> <pattern>, got %d argument(s)", sar.CommandName, cmd.Args().Len())
	}
	location, pattern := cmd.Args().Get(0), cmd.Args().Get(1)

	// Step 3: Scan.
	result, err := sar.ScanFn(NewScanner(cmd), ctx, location, pattern)
	if err != nil {
		return err
	}

	// Step 4: Render.
	var buf bytes.Buffer
	if err := sar.EmitFn(&buf, result, RenderOptions(cmd)); err != nil {
		return fmt.Errorf("failed to render %s result: %w", sar.CommandName, err)
	}

	// Step 5: Emit + return.
	if out := cmd.String("out"); out != "" {
		return output.WriteFile(out, buf.Bytes())
	}
	_, err = Writer(cmd).Write(buf.Bytes())
	return err
}

// NewScanActionRunner creates a ScanActionRunner with the provided
// configuration.
func NewScanActionRunner[T any](
	commandName string,
	scanFn func(*scan.Scanner, context.Context, string, string) (T, error),
	emitFn func(io.Writer, T, output.Options) error,
) *ScanActionRunner[T] {
	return &ScanActionRunner[T]{
		CommandName: commandName,
		ScanFn:      scanFn,
		EmitFn:      emitFn,
	}
}
