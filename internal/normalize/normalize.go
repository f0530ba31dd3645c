// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package normalize provides the whitespace and line-number stripping
// helpers shared by every matching tier. All functions are pure.
//
// Implements: prd002-match-engine R2.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	wsRun       = regexp.MustCompile(`\s+`)
	lineNumber  = regexp.MustCompile(`^[ \t]*\d+([\t]|→)`)
	quoteRemove = strings.NewReplacer(`'`, "", `"`, "", "`", "")
)

// StripAll computes the whitespace-insensitive comparison key for a line or
// block: CRLF is normalized to LF, then every remaining whitespace character
// (spaces, tabs, newlines) is removed entirely.
func StripAll(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseRuns is the looser mid-tier key: any whitespace run collapses to a
// single space and both ends are trimmed. Unlike StripAll, word boundaries
// survive.
func CollapseRuns(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// StripVarying applies StripAll and additionally removes literal newline
// markers and all quote characters. Models often re-quote strings when
// echoing code back, so the contiguous-run tier compares with this key.
func StripVarying(s string) string {
	s = StripAll(s)
	s = strings.ReplaceAll(s, `\n`, "")
	return quoteRemove.Replace(s)
}

// StripLineNumbers removes, per line, a leading run of digits (optionally
// preceded by whitespace) followed by a single tab or arrow separator. This
// undoes cat -n style prefixes a model may have echoed back from a prior
// file read.
func StripLineNumbers(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lineNumber.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}
