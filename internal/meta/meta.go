// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"github.com/csvscan/csvscan/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the loaded configuration, and the working directory the process started in,
// against which relative locations resolve.
type Meta struct {
	Args        []string
	Config      config.Type
	StartingDir string
}

// Subcommand returns the subcommand named on the command line, or "" when
// none was given.
func (m Meta) Subcommand() string {
	if len(m.Args) > 1 {
		return m.Args[1]
	}
	return ""
}
