// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/csvscan/csvscan/internal/log"
)

// S3Scheme prefixes locations served by the S3 opener.
const S3Scheme = "s3://"

// Local opens paths on the local filesystem.
type Local struct{}

// Open implements scan.Opener. Directories are refused up front rather than
// failing on the first read.
func (Local) Open(_ context.Context, location string) (io.ReadCloser, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input cannot be a directory: %s", location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	log.Debugf("opened local file: path=%s size=%d", location, info.Size())
	return f, nil
}

// Auto dispatches on the location scheme: s3:// to S3, everything else to
// Local. A nil S3 rejects remote locations.
type Auto struct {
	Local Local
	S3    *S3
}

// Open implements scan.Opener.
func (a Auto) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsRemote(location) {
		if a.S3 == nil {
			return nil, fmt.Errorf("remote locations are not enabled: %s", location)
		}
		return a.S3.Open(ctx, location)
	}
	return a.Local.Open(ctx, location)
}

// IsRemote reports whether location names an S3 object.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, S3Scheme)
}
