// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a scan failure so callers can branch without parsing text.
type Kind int

const (
	KindUnknown Kind = iota
	InvalidFileType
	FileOpenFailure
	InvalidPattern
	MalformedRecord
	SerializationFailure
)

// Sentinels, one per Kind. An *Error matches its sentinel via errors.Is.
var (
	ErrInvalidFileType      = errors.New("invalid file type")
	ErrFileOpenFailure      = errors.New("file open failure")
	ErrInvalidPattern       = errors.New("invalid pattern")
	ErrMalformedRecord      = errors.New("malformed record")
	ErrSerializationFailure = errors.New("serialization failure")
)

var kindSentinels = map[Kind]error{
	InvalidFileType:      ErrInvalidFileType,
	FileOpenFailure:      ErrFileOpenFailure,
	InvalidPattern:       ErrInvalidPattern,
	MalformedRecord:      ErrMalformedRecord,
	SerializationFailure: ErrSerializationFailure,
}

// String returns the kind name as used in error text.
func (k Kind) String() string {
	switch k {
	case InvalidFileType:
		return "InvalidFileType"
	case FileOpenFailure:
		return "FileOpenFailure"
	case InvalidPattern:
		return "InvalidPattern"
	case MalformedRecord:
		return "MalformedRecord"
	case SerializationFailure:
		return "SerializationFailure"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by the scan operations. Fields that
// do not apply to a failure are left at their zero value.
//
// Fields:
//   - Kind: the failure class.
//   - Op: the operation that failed ("find", "count", "merge") if known.
//   - Path: the input location.
//   - Pattern: the pattern source as supplied.
//   - Line: 1-based line of the offending record (MalformedRecord only).
//   - Err: the underlying cause, if any.
type Error struct {
	Kind    Kind
	Op      string
	Path    string
	Pattern string
	Line    int
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())

	var ctx []string
	if e.Path != "" {
		ctx = append(ctx, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Kind == InvalidPattern {
		ctx = append(ctx, fmt.Sprintf("pattern=%q", e.Pattern))
	}
	if e.Line > 0 {
		ctx = append(ctx, fmt.Sprintf("line=%d", e.Line))
	}
	if len(ctx) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(ctx, " "))
		b.WriteString(")")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// annotate fills in whatever call context a scan error is missing.
func annotate(err error, op, location, pattern string) error {
	var se *Error
	if !errors.As(err, &se) {
		return err
	}
	if se.Op == "" {
		se.Op = op
	}
	if se.Path == "" {
		se.Path = location
	}
	if se.Pattern == "" {
		se.Pattern = pattern
	}
	return err
}
