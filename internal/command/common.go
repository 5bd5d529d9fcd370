// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/csvscan/csvscan/internal/config"
	"github.com/csvscan/csvscan/internal/log"
	"github.com/csvscan/csvscan/internal/meta"
	"github.com/csvscan/csvscan/internal/output"
	"github.com/csvscan/csvscan/internal/scan"
	"github.com/csvscan/csvscan/internal/source"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewScanner builds a scan.Scanner from the command's flags. Local paths and
// s3:// locations are both accepted.
func NewScanner(cmd *cli.Command) *scan.Scanner {
	hours, _ := config.GetInt("cache.clean", 0)

	src := source.Auto{
		S3: &source.S3{
			Profile:    cmd.String("profile"),
			Region:     cmd.String("region"),
			Endpoint:   cmd.String("endpoint"),
			CacheHours: hours,
		},
	}

	return scan.New(
		scan.WithHeader(!cmd.Bool("no-header")),
		scan.WithOpener(src),
	)
}

// RenderOptions collects the output flags. Color is only honored when the
// destination is a terminal.
func RenderOptions(cmd *cli.Command) output.Options {
	w := Writer(cmd)
	color := false
	if cmd.Bool("color") {
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			color = true
		} else {
			log.Debug("color disabled: output is not a terminal")
		}
	}

	return output.Options{
		Format: cmd.String("output"),
		Color:  color,
		Titles: cmd.Bool("titles"),
	}
}

// Writer returns the root command's writer, defaulting to stdout.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
