// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
)

// utf8BOM is dropped from the front of the stream before parsing.
// Spreadsheet exports routinely prepend it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RecordReader yields the data records of a CSV stream one at a time. It is
// finite and not restartable. Every returned record is a fresh slice.
type RecordReader struct {
	r      *csv.Reader
	header []string
}

// NewRecordReader wraps rd. When header is true the first row is consumed
// immediately and exposed via Header instead of being yielded as data. The
// field count of the first row, header or not, is enforced on every later
// row.
func NewRecordReader(rd io.Reader, header bool) (*RecordReader, error) {
	br := bufio.NewReader(rd)
	if err := skipBOM(br); err != nil {
		return nil, &Error{Kind: FileOpenFailure, Err: err}
	}

	r := csv.NewReader(br)
	r.Comma = ','
	r.FieldsPerRecord = 0
	r.LazyQuotes = false
	r.ReuseRecord = false

	rr := &RecordReader{r: r}
	if !header {
		return rr, nil
	}

	rec, err := rr.read()
	if errors.Is(err, io.EOF) {
		return rr, nil
	}
	if err != nil {
		return nil, err
	}
	rr.header = rec
	return rr, nil
}

// Header returns the header row, or nil when there is none.
func (rr *RecordReader) Header() []string {
	return rr.header
}

// Next returns the next data record. It returns io.EOF after the last record
// and a MalformedRecord *Error for any structural problem, after which the
// reader must not be used again. A failure of the underlying stream is
// reported as FileOpenFailure.
func (rr *RecordReader) Next() ([]string, error) {
	return rr.read()
}

func (rr *RecordReader) read() ([]string, error) {
	rec, err := rr.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &Error{Kind: MalformedRecord, Line: pe.Line, Err: err}
		}
		// Anything else is the underlying stream failing, not the data.
		return nil, &Error{Kind: FileOpenFailure, Err: err}
	}
	return rec, nil
}

// skipBOM discards a leading UTF-8 byte order mark. Streams shorter than the
// mark are left untouched.
func skipBOM(br *bufio.Reader) error {
	lead, err := br.Peek(len(utf8BOM))
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if bytes.Equal(lead, utf8BOM) {
		_, err = br.Discard(len(utf8BOM))
		return err
	}
	return nil
}
