// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"path"
)

// Extension is the only suffix accepted for scan inputs. The comparison is
// case-sensitive, so "data.CSV" is rejected.
const Extension = ".csv"

// ValidateExtension checks that location ends in Extension. It performs no
// I/O. Remote locations (s3://bucket/key.csv) are judged on their key. A name
// that is only the extension (".csv") is a hidden file with no extension.
func ValidateExtension(location string) error {
	// path.Ext rather than filepath.Ext so URLs behave the same on every OS.
	if path.Ext(location) != Extension || path.Base(location) == Extension {
		return &Error{Kind: InvalidFileType, Path: location}
	}
	return nil
}
