// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvscan/csvscan/internal/config"
	"github.com/csvscan/csvscan/internal/version"
)

func loadSets(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csvscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	saved := config.Config
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = saved })

	_, err := config.Load(path)
	require.NoError(t, err)
}

func TestProcessSetOnly(t *testing.T) {
	loadSets(t, `
find:
  wide:
    - --titles
    - --output json
merge:
  quiet:
    - -o raw
`)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "too short",
			args:     []string{"csvscan", "find"},
			expected: []string{"csvscan", "find"},
		},
		{
			name:     "no set",
			args:     []string{"csvscan", "find", "a.csv", "x"},
			expected: []string{"csvscan", "find", "a.csv", "x"},
		},
		{
			name:     "set expanded in place",
			args:     []string{"csvscan", "find", "@wide", "a.csv", "x"},
			expected: []string{"csvscan", "find", "--titles", "--output", "json", "a.csv", "x"},
		},
		{
			name:     "set is namespaced to the command",
			args:     []string{"csvscan", "merge", "@quiet", "a.csv", "x"},
			expected: []string{"csvscan", "merge", "-o", "raw", "a.csv", "x"},
		},
		{
			name:     "unknown set left as a pattern",
			args:     []string{"csvscan", "find", "a.csv", "@example.com"},
			expected: []string{"csvscan", "find", "a.csv", "@example.com"},
		},
		{
			name:     "set from another command not applied",
			args:     []string{"csvscan", "count", "@wide", "a.csv", "x"},
			expected: []string{"csvscan", "count", "@wide", "a.csv", "x"},
		},
		{
			name:     "bare at sign",
			args:     []string{"csvscan", "find", "a.csv", "@"},
			expected: []string{"csvscan", "find", "a.csv", "@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestProcessCommandArgsCompletion(t *testing.T) {
	args := []string{"csvscan", "completion", "@wide"}
	assert.Equal(t, args, processCommandArgs(args))
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"csvscan", "--help"}, handleNakedCommand([]string{"csvscan"}))
	assert.Equal(t, []string{"csvscan", "find"}, handleNakedCommand([]string{"csvscan", "find"}))
}

func TestHandleVersion(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, handleVersion(&buf, []string{"csvscan", "-v"}))
	assert.Equal(t, version.Version, strings.TrimSpace(buf.String()))

	buf.Reset()
	assert.False(t, handleVersion(&buf, []string{"csvscan", "find"}))
	assert.Empty(t, buf.String())
}

func TestInitAndRunAppExitCodes(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "missing.yaml"))
	saved := config.Config
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = saved })

	dir := t.TempDir()
	csv := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(csv, []byte("Name\nJhon\n"), 0o600))

	stdout, stderr := os.Stdout, os.Stderr
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	t.Cleanup(func() { devnull.Close() })
	os.Stdout, os.Stderr = devnull, devnull
	t.Cleanup(func() { os.Stdout, os.Stderr = stdout, stderr })

	assert.Equal(t, 0, initAndRunApp([]string{"csvscan", "count", csv, "J"}))
	assert.Equal(t, 2, initAndRunApp([]string{"csvscan", "count", filepath.Join(dir, "people.txt"), "J"}))
}
