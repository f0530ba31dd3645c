// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package match implements the ordered chain of matching strategies that
// locates an approximate old-text region inside a file: exact substring,
// whitespace-normalized window, contiguous character run, and fuzzy
// line-by-line alignment. The first strategy to succeed wins.
//
// Implements: prd002-match-engine R3-R7.
package match

import (
	"strings"

	"github.com/petar-djukic/go-edit/internal/normalize"
)

// File holds one file's content plus the normalized comparison views shared
// by the matching strategies. It is built once per edit request and
// discarded afterwards.
type File struct {
	Content string
	Lines   []string

	normLines []string // StripAll key per line, built on first use
	runLines  []string // StripVarying key per line, built on first use
}

// NewFile splits content into lines. The final empty line produced by a
// trailing newline is kept so splices preserve it byte-for-byte.
func NewFile(content string) *File {
	return &File{
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// NormLines returns the StripAll comparison key for every line.
func (f *File) NormLines() []string {
	if f.normLines == nil {
		f.normLines = make([]string, len(f.Lines))
		for i, line := range f.Lines {
			f.normLines[i] = normalize.StripAll(line)
		}
	}
	return f.normLines
}

// RunLines returns the StripVarying comparison key for every line, used by
// the contiguous-run strategy.
func (f *File) RunLines() []string {
	if f.runLines == nil {
		f.runLines = make([]string, len(f.Lines))
		for i, line := range f.Lines {
			f.runLines[i] = normalize.StripVarying(line)
		}
	}
	return f.runLines
}
