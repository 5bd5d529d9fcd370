// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/csvscan/csvscan/internal/log"
)

// Marker replaces every matching field in Merge output.
const Marker = "[MERGED]"

// Opener resolves a location to a readable stream. The caller closes it.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, location string) (io.ReadCloser, error)

// Open implements Opener.
func (f OpenerFunc) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	return f(ctx, location)
}

// fileOpener opens local paths. It is the default Opener.
var fileOpener = OpenerFunc(func(_ context.Context, location string) (io.ReadCloser, error) {
	return os.Open(location)
})

// Scanner runs Find, Count and Merge. The zero value is not usable; build one
// with New. A Scanner holds no per-call state and may be shared.
type Scanner struct {
	header bool
	opener Opener
}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithHeader controls whether the first row is treated as a header and left
// out of the scanned data. Defaults to true for every operation.
func WithHeader(header bool) Option {
	return func(s *Scanner) { s.header = header }
}

// WithOpener replaces the local file opener, e.g. with one that understands
// remote locations.
func WithOpener(o Opener) Option {
	return func(s *Scanner) {
		if o != nil {
			s.opener = o
		}
	}
}

// New returns a Scanner with the header row excluded and local file access.
func New(opts ...Option) *Scanner {
	s := &Scanner{header: true, opener: fileOpener}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Find returns every field matching pattern in row-major order. An empty,
// non-nil slice means no match.
func (s *Scanner) Find(ctx context.Context, location, pattern string) ([]string, error) {
	matches := []string{}
	_, err := s.each(ctx, "find", location, pattern, func(rec []string, m *Matcher) {
		for _, field := range rec {
			if m.Matches(field) {
				matches = append(matches, field)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Count returns the number of fields matching pattern. It always equals
// len(Find(...)) for the same input.
func (s *Scanner) Count(ctx context.Context, location, pattern string) (int, error) {
	count := 0
	_, err := s.each(ctx, "count", location, pattern, func(rec []string, m *Matcher) {
		for _, field := range rec {
			if m.Matches(field) {
				count++
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Merge rewrites every matching field to Marker, keeps only rows with at least
// one match and returns them as CSV text, preceded by the header row when
// header mode is on. No kept rows yields "". A field that already reads Marker
// counts as a match, so Merge applied to its own output is a no-op.
func (s *Scanner) Merge(ctx context.Context, location, pattern string) (string, error) {
	var kept [][]string
	header, err := s.each(ctx, "merge", location, pattern, func(rec []string, m *Matcher) {
		out := make([]string, len(rec))
		matched := false
		for i, field := range rec {
			if field == Marker || m.Matches(field) {
				out[i] = Marker
				matched = true
				continue
			}
			out[i] = field
		}
		if matched {
			kept = append(kept, out)
		}
	})
	if err != nil {
		return "", err
	}

	text, err := serialize(header, kept)
	if err != nil {
		return "", annotate(err, "merge", location, pattern)
	}
	return text, nil
}

// each is the single pass shared by all operations: validate, compile, open,
// then hand every data record to visit. The stream is closed on every path.
// It returns the header row, if any.
func (s *Scanner) each(
	ctx context.Context,
	op, location, pattern string,
	visit func(rec []string, m *Matcher),
) (header []string, err error) {
	defer func() {
		if err != nil {
			err = annotate(err, op, location, pattern)
			log.Debugf("%s failed: %v", op, err)
		}
	}()

	if err := ValidateExtension(location); err != nil {
		return nil, err
	}

	// Compile before opening so a bad pattern costs no I/O.
	m, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	rc, err := s.opener.Open(ctx, location)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, &Error{Kind: FileOpenFailure, Err: err}
	}
	defer rc.Close()

	rr, err := NewRecordReader(rc, s.header)
	if err != nil {
		return nil, err
	}

	rows := 0
	for {
		rec, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows++
		log.Tracef("%s row %d: %v", op, rows, rec)
		visit(rec, m)
	}

	log.Debugf("%s: path=%s pattern=%q rows=%d", op, location, pattern, rows)
	return rr.Header(), nil
}

// serialize encodes rows as CSV with the header, if any, on top.
func serialize(header []string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	all := rows
	if header != nil {
		all = append([][]string{header}, rows...)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(all); err != nil {
		return "", &Error{Kind: SerializationFailure, Err: err}
	}
	return buf.String(), nil
}

// Find runs Scanner.Find with default options.
func Find(ctx context.Context, location, pattern string) ([]string, error) {
	return New().Find(ctx, location, pattern)
}

// Count runs Scanner.Count with default options.
func Count(ctx context.Context, location, pattern string) (int, error) {
	return New().Count(ctx, location, pattern)
}

// Merge runs Scanner.Merge with default options.
func Merge(ctx context.Context, location, pattern string) (string, error) {
	return New().Merge(ctx, location, pattern)
}
