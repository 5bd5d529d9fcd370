// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package scan applies a regular expression to every field of a CSV file and
// derives one of three results from a single pass over the data:
//
//   - Find: the matching field values, in row-major order.
//   - Count: the number of matching fields.
//   - Merge: the rows with at least one match, matching fields replaced by
//     the [MERGED] marker, re-encoded as CSV.
//
// Each operation validates the ".csv" suffix before any I/O, compiles the
// pattern once, and stops at the first error. The first row is a header and
// is never scanned unless the Scanner is built with WithHeader(false).
//
// Every failure is a *Error whose Kind is one of InvalidFileType,
// FileOpenFailure, InvalidPattern, MalformedRecord or SerializationFailure.
// Use KindOf or errors.Is with the Err* sentinels to branch on it.
//
// Matching is substring search: the pattern "ohn" matches "Johnson". Anchor
// with ^ and $ for whole-field matches. An empty pattern, or one made only of
// anchors and empty groups, is rejected rather than treated as match-all.
package scan
