// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other csvscan packages to avoid import cycles.

package version

import "runtime/debug"

// Version is stamped at link time with
// -ldflags "-X github.com/csvscan/csvscan/internal/version.Version=v1.2.3".
// When unset it falls back to the module version recorded in the binary.
var Version string

func init() {
	if Version == "" {
		Version = fromBuildInfo()
	}
}

func fromBuildInfo() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
