// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAll(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"removes spaces", "a b  c", "abc"},
		{"removes tabs", "\ta\tb\t", "ab"},
		{"removes newlines", "a\nb\nc", "abc"},
		{"normalizes crlf", "a\r\nb", "ab"},
		{"mixed indentation", "  \tfoo(bar, baz)  ", "foo(bar,baz)"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripAll(tt.in))
		})
	}
}

func TestCollapseRuns(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses space runs", "a   b", "a b"},
		{"collapses tabs", "a\t\tb", "a b"},
		{"collapses newlines", "a\n\nb", "a b"},
		{"trims ends", "  a b  ", "a b"},
		{"preserves word boundaries", "if x  >  1", "if x > 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseRuns(tt.in))
		})
	}
}

func TestStripVarying(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"removes single quotes", "log('hi')", "log(hi)"},
		{"removes double quotes", `log("hi")`, "log(hi)"},
		{"removes backticks", "log(`hi`)", "log(hi)"},
		{"removes literal newline markers", `a\nb`, "ab"},
		{"whitespace still stripped", " a 'b' ", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripVarying(tt.in))
		})
	}
}

func TestStripLineNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tab separator", "12\tfoo()", "foo()"},
		{"arrow separator", "12→foo()", "foo()"},
		{"leading whitespace before digits", "   7\tbar", "bar"},
		{"multiple lines", "1\ta\n2\tb", "a\nb"},
		{"no prefix untouched", "foo(12)", "foo(12)"},
		{"digits without separator untouched", "42 is the answer", "42 is the answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripLineNumbers(tt.in))
		})
	}
}
