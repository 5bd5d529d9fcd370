// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for csvscan's user
// configuration. The configuration is a YAML document named by
// CSVSCAN_CFG_FILE or, failing that, located in the user's configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/csvscan.yaml or $HOME/.config/csvscan.yaml
//   - macOS: $HOME/Library/Application Support/csvscan.yaml
//   - Windows: %AppData%/csvscan.yaml
//
// Keys are dotted paths. Setting Config.Namespace to a subcommand name makes
// "<namespace>.<key>" win over "<key>", so per-command settings can override
// global ones.
package config
