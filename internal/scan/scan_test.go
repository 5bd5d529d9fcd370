// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scan

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const people = "Name,Age\nJhon,25\nMarta,30\ncarlos,40\n"

var ctx = context.Background()

// writeCSV writes content to name inside a fresh temp dir and returns the path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// trackingOpener serves fixed content and records open/close calls.
type trackingOpener struct {
	content string
	opened  int
	closed  int
}

func (o *trackingOpener) Open(_ context.Context, _ string) (io.ReadCloser, error) {
	o.opened++
	return &trackingBody{Reader: strings.NewReader(o.content), o: o}, nil
}

type trackingBody struct {
	io.Reader
	o *trackingOpener
}

func (b *trackingBody) Close() error {
	b.o.closed++
	return nil
}

// parseCSV decodes merge output for structural assertions.
func parseCSV(t *testing.T, text string) [][]string {
	t.Helper()
	recs, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pattern string
		want    []string
	}{
		{
			name:    "capitalized names",
			content: people,
			pattern: "^[A-Z][a-z]*",
			want:    []string{"Jhon", "Marta"},
		},
		{
			name:    "digits anchored at start",
			content: people,
			pattern: "^[0-9]+",
			want:    []string{"25", "30", "40"},
		},
		{
			name:    "substring",
			content: "Name\nJohnson\nSmith\n",
			pattern: "ohn",
			want:    []string{"Johnson"},
		},
		{
			name:    "row major then field order",
			content: "A,B\nx1,x2\ny,x3\n",
			pattern: "x",
			want:    []string{"x1", "x2", "x3"},
		},
		{
			name:    "duplicates kept",
			content: "A,B\nsame,same\nsame,other\n",
			pattern: "same",
			want:    []string{"same", "same", "same"},
		},
		{
			name:    "header only",
			content: "Name,Age\n",
			pattern: "^[A-Z]",
			want:    []string{},
		},
		{
			name:    "empty file",
			content: "",
			pattern: "^[A-Z]",
			want:    []string{},
		},
		{
			name:    "header never scanned",
			content: "Name,Age\nx,1\n",
			pattern: "Name",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "in.csv", tt.content)
			got, err := Find(ctx, path, tt.pattern)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericPatternOnNames(t *testing.T) {
	path := writeCSV(t, "in.csv", "Name\nJhon\nMarta\ncarlos\n")

	found, err := Find(ctx, path, "^[0-9]+")
	require.NoError(t, err)
	assert.Equal(t, []string{}, found)

	n, err := Count(ctx, path, "^[0-9]+")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountMatchesFindLength(t *testing.T) {
	contents := []string{
		people,
		"A,B,C\nab,abc,x\n,,\nb,a,a\n",
		"Name,Age\n",
		"",
	}
	patterns := []string{"a", "^[A-Z][a-z]*", "[0-9]", "b$", "x|y"}

	for _, content := range contents {
		path := writeCSV(t, "in.csv", content)
		for _, p := range patterns {
			found, err := Find(ctx, path, p)
			require.NoError(t, err)
			n, err := Count(ctx, path, p)
			require.NoError(t, err)
			assert.Equal(t, len(found), n, "content=%q pattern=%q", content, p)
		}
	}
}

func TestMergeSingleRow(t *testing.T) {
	path := writeCSV(t, "in.csv", "Name,Age\nJhon,25\n")

	got, err := Merge(ctx, path, "^[A-Z][a-z]*")
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\n[MERGED],25\n", got)
}

func TestMergeDropsUnmatchedRows(t *testing.T) {
	path := writeCSV(t, "in.csv", people)

	got, err := Merge(ctx, path, "^[A-Z][a-z]*")
	require.NoError(t, err)

	recs := parseCSV(t, got)
	assert.Equal(t, [][]string{
		{"Name", "Age"},
		{"[MERGED]", "25"},
		{"[MERGED]", "30"},
	}, recs)
}

func TestMergeProperties(t *testing.T) {
	content := "A,B,C\nfoo,bar,baz\nqux,quux,corge\nbar,bar,x\n\"has, comma\",bar,\"q\"\"uote\"\n"
	path := writeCSV(t, "in.csv", content)
	inRows := len(parseCSV(t, content)) - 1

	for _, p := range []string{"bar", "^q", "z$", "nomatch", "o"} {
		got, err := Merge(ctx, path, p)
		require.NoError(t, err)
		if got == "" {
			continue
		}

		recs := parseCSV(t, got)
		data := recs[1:]
		assert.LessOrEqual(t, len(data), inRows, "pattern %q", p)
		for _, row := range data {
			assert.Len(t, row, 3)
			assert.Contains(t, row, Marker, "pattern %q row %v", p, row)
		}
	}
}

func TestMergePreservesQuoting(t *testing.T) {
	path := writeCSV(t, "in.csv", "A,B\n\"has, comma\",hit\n")

	got, err := Merge(ctx, path, "hit")
	require.NoError(t, err)
	assert.Equal(t, "A,B\n\"has, comma\",[MERGED]\n", got)
}

func TestMergeNoMatchesIsEmpty(t *testing.T) {
	path := writeCSV(t, "in.csv", people)

	got, err := Merge(ctx, path, "zzz")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	path = writeCSV(t, "in.csv", "Name,Age\n")
	got, err = Merge(ctx, path, "zzz")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestMergeIdempotent(t *testing.T) {
	path := writeCSV(t, "in.csv", people)

	first, err := Merge(ctx, path, "^[A-Z][a-z]*")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	again := writeCSV(t, "merged.csv", first)
	second, err := Merge(ctx, again, "^[A-Z][a-z]*")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInvalidFileTypeBeforeIO(t *testing.T) {
	opener := &trackingOpener{content: people}
	s := New(WithOpener(opener))

	for _, location := range []string{"people.txt", "people", "people.CSV", "/no/such/dir/people.json"} {
		_, err := s.Find(ctx, location, "a")
		assert.Equal(t, InvalidFileType, KindOf(err), location)

		_, err = s.Count(ctx, location, "a")
		assert.Equal(t, InvalidFileType, KindOf(err), location)

		_, err = s.Merge(ctx, location, "a")
		assert.Equal(t, InvalidFileType, KindOf(err), location)
	}
	assert.Zero(t, opener.opened)
}

func TestMatchEverythingPatternRejected(t *testing.T) {
	opener := &trackingOpener{content: people}
	s := New(WithOpener(opener))

	for _, pattern := range []string{"^|$", "(?:^|$)", "()*", "^+"} {
		got, err := s.Merge(ctx, "people.csv", pattern)
		assert.Equal(t, InvalidPattern, KindOf(err), pattern)
		assert.Empty(t, got, pattern)
	}
	assert.Zero(t, opener.opened)
}

func TestBareExtensionRejected(t *testing.T) {
	path := writeCSV(t, ".csv", people)

	_, err := Find(ctx, path, "Jhon")
	assert.Equal(t, InvalidFileType, KindOf(err))
}

func TestEmptyPatternRejected(t *testing.T) {
	path := writeCSV(t, "in.csv", people)

	_, err := Find(ctx, path, "")
	assert.Equal(t, InvalidPattern, KindOf(err))

	_, err = Count(ctx, path, "")
	assert.Equal(t, InvalidPattern, KindOf(err))

	_, err = Merge(ctx, path, "")
	assert.Equal(t, InvalidPattern, KindOf(err))

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "merge", se.Op)
	assert.Equal(t, path, se.Path)
}

func TestFileOpenFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Find(ctx, missing, "a")
	require.Error(t, err)
	assert.Equal(t, FileOpenFailure, KindOf(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestMalformedRecordAborts(t *testing.T) {
	path := writeCSV(t, "in.csv", "Name,Age\nJhon,25\nMarta\ncarlos,40\n")

	found, err := Find(ctx, path, "^[A-Z]")
	assert.Nil(t, found)
	assert.Equal(t, MalformedRecord, KindOf(err))

	n, err := Count(ctx, path, "^[A-Z]")
	assert.Zero(t, n)
	assert.Equal(t, MalformedRecord, KindOf(err))

	text, err := Merge(ctx, path, "^[A-Z]")
	assert.Empty(t, text)
	assert.Equal(t, MalformedRecord, KindOf(err))

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Line)
	assert.Equal(t, path, se.Path)
}

func TestStreamClosedOnEveryPath(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pattern string
		wantErr bool
	}{
		{name: "success", content: people, pattern: "a"},
		{name: "malformed", content: "A,B\nx\n", pattern: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := &trackingOpener{content: tt.content}
			_, err := New(WithOpener(opener)).Merge(ctx, "in.csv", tt.pattern)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, 1, opener.opened)
			assert.Equal(t, 1, opener.closed)
		})
	}
}

func TestInvalidPatternSkipsOpen(t *testing.T) {
	opener := &trackingOpener{content: people}
	_, err := New(WithOpener(opener)).Count(ctx, "in.csv", "(")
	assert.Equal(t, InvalidPattern, KindOf(err))
	assert.Zero(t, opener.opened)
}

func TestOpenerErrorWrapped(t *testing.T) {
	boom := errors.New("access denied")
	opener := OpenerFunc(func(context.Context, string) (io.ReadCloser, error) {
		return nil, boom
	})

	_, err := New(WithOpener(opener)).Find(ctx, "s3://bucket/key.csv", "a")
	assert.Equal(t, FileOpenFailure, KindOf(err))
	assert.ErrorIs(t, err, boom)
}

func TestWithoutHeader(t *testing.T) {
	opener := &trackingOpener{content: people}
	s := New(WithHeader(false), WithOpener(opener))

	found, err := s.Find(ctx, "in.csv", "^[A-Z][a-z]*")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "Jhon", "Marta"}, found)

	merged, err := s.Merge(ctx, "in.csv", "^N")
	require.NoError(t, err)
	assert.Equal(t, "[MERGED],Age\n", merged)
}

func TestSerializeEmpty(t *testing.T) {
	text, err := serialize([]string{"a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
