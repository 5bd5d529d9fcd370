// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantErr  bool
	}{
		{name: "plain csv", location: "people.csv"},
		{name: "nested path", location: "/data/in/people.csv"},
		{name: "dotted directory", location: "some.dir/people.csv"},
		{name: "s3 object", location: "s3://bucket/exports/people.csv"},
		{name: "upper case suffix", location: "people.CSV", wantErr: true},
		{name: "mixed case suffix", location: "people.Csv", wantErr: true},
		{name: "other suffix", location: "people.tsv", wantErr: true},
		{name: "double suffix", location: "people.csv.gz", wantErr: true},
		{name: "no suffix", location: "people", wantErr: true},
		{name: "dotted directory no suffix", location: "some.csv/people", wantErr: true},
		{name: "trailing slash", location: "people.csv/", wantErr: true},
		{name: "empty", location: "", wantErr: true},
		{name: "bare extension", location: ".csv", wantErr: true},
		{name: "bare extension in dir", location: "/data/in/.csv", wantErr: true},
		{name: "bare extension s3 key", location: "s3://bucket/.csv", wantErr: true},
		{name: "hidden csv", location: "/data/in/.people.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.location)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, InvalidFileType, KindOf(err))
			assert.ErrorIs(t, err, ErrInvalidFileType)
		})
	}
}
