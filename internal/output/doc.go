// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders scan results (matched fields, a count, or merged
// CSV text) as text, json, yaml or raw, and writes result files atomically.
package output
