// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"errors"
	"regexp"
	"regexp/syntax"
)

// errDegeneratePattern is the cause attached to InvalidPattern when the source
// parses but can only ever match the empty string.
var errDegeneratePattern = errors.New("pattern matches every field")

// Matcher is a compiled, immutable field predicate. It is safe for concurrent
// use.
type Matcher struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles src (RE2 syntax) into a Matcher. An empty source is
// rejected, as is any source that reduces to nothing but empty matches and
// anchors ("()", "^", "^$", "^|$", "()*"), since those would select every
// field.
func CompilePattern(src string) (*Matcher, error) {
	if src == "" {
		return nil, &Error{Kind: InvalidPattern, Pattern: src, Err: errors.New("empty pattern")}
	}

	parsed, err := syntax.Parse(src, syntax.Perl)
	if err != nil {
		return nil, &Error{Kind: InvalidPattern, Pattern: src, Err: err}
	}
	if degenerate(parsed.Simplify()) {
		return nil, &Error{Kind: InvalidPattern, Pattern: src, Err: errDegeneratePattern}
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &Error{Kind: InvalidPattern, Pattern: src, Err: err}
	}

	return &Matcher{source: src, re: re}, nil
}

// Matches reports whether the pattern occurs anywhere within field.
func (m *Matcher) Matches(field string) bool {
	return m.re.MatchString(field)
}

// String returns the pattern source.
func (m *Matcher) String() string {
	return m.source
}

// degenerate reports whether re consumes no input under any path.
func degenerate(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText:
		return true
	case syntax.OpCapture, syntax.OpConcat, syntax.OpAlternate,
		syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		for _, sub := range re.Sub {
			if !degenerate(sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
