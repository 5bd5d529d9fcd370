// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/csvscan/csvscan/internal/meta"
	"github.com/csvscan/csvscan/internal/output"
	"github.com/csvscan/csvscan/internal/scan"
)

func countCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := NewScanActionRunner("count", (*scan.Scanner).Count, output.Count)
	return runner.Run(ctx, cmd)
}

func countCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ScanCommandBuilder{
		Name:      "count",
		Usage:     "count fields matching a pattern",
		UsageText: "csvscan count [options] <file.csv> <pattern>",
		Action:    countCommandAction,
		Meta:      meta,
	}).Build()
}
