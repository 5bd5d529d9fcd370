// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/csvscan/csvscan/internal/meta"
)

// ScanCommandBuilder constructs a cli.Command for the scan subcommands (find,
// count, merge) using a consistent pattern. The builder wires metadata,
// applies the global flags namespaced to the command, and sets up validators.
type ScanCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (scb *ScanCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      scb.Name,
		Usage:     scb.Usage,
		UsageText: scb.UsageText,
		ArgsUsage: "<file.csv> <pattern>",
		Metadata: map[string]any{
			"meta": scb.Meta,
		},
		Flags: append(scb.Flags, NewGlobalFlags(scb.Name, scb.Meta.Config.Source)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: scb.Action,
	}
}
