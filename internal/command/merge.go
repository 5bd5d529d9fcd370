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

func mergeCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := NewScanActionRunner("merge", (*scan.Scanner).Merge, output.Merged)
	return runner.Run(ctx, cmd)
}

func mergeCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ScanCommandBuilder{
		Name:      "merge",
		Usage:     "replace matching fields with " + scan.Marker + " and keep matching rows",
		UsageText: "csvscan merge [options] <file.csv> <pattern>",
		Flags:     []cli.Flag{NewOutFlag()},
		Action:    mergeCommandAction,
		Meta:      meta,
	}).Build()
}
