// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubcommand(t *testing.T) {
	assert.Equal(t, "merge", Meta{Args: []string{"csvscan", "merge", "a.csv"}}.Subcommand())
	assert.Equal(t, "", Meta{Args: []string{"csvscan"}}.Subcommand())
	assert.Equal(t, "", Meta{}.Subcommand())
}
