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

func findCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := NewScanActionRunner("find", (*scan.Scanner).Find, output.Matches)
	return runner.Run(ctx, cmd)
}

func findCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ScanCommandBuilder{
		Name:      "find",
		Usage:     "list fields matching a pattern",
		UsageText: "csvscan find [options] <file.csv> <pattern>",
		Action:    findCommandAction,
		Meta:      meta,
	}).Build()
}
