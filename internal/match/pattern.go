// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R5.1-R5.3 (shared preprocessing for the
//
//	contiguous-run and fuzzy-line strategies).
package match

import (
	"strings"

	"github.com/petar-djukic/go-edit/internal/normalize"
	"github.com/petar-djukic/go-edit/pkg/types"
)

// Hint scan cutoffs. The hint is approximate, so scanning starts a few lines
// above it; multi-line patterns get a wider window below it than single-line
// ones, which would otherwise pay for a whole-file scan despite a precise
// hint.
const (
	hintBacktrack       = 5
	hintWindowMultiLine = 50
	hintWindowSingle    = 5
)

// Pattern is the preprocessed form of an edit request shared by the
// contiguous-run and fuzzy-line strategies.
type Pattern struct {
	OldOriginal []string // Old lines verbatim, after edge-blank trimming
	Keys        []string // StripAll key per old line
	NewText     string   // New text after line-number stripping
	RunBuffer   string   // StripVarying of the whole old text

	hintIdx int // 0-based; valid only when hasHint
	hasHint bool
}

// NewPattern strips accidental cat -n prefixes from both texts, removes the
// backslash-newline escaping artifact some models emit, and trims a single
// leading and trailing whitespace-only line from the old text. Interior
// blank lines are never dropped.
func NewPattern(req types.EditRequest) *Pattern {
	old := strings.TrimPrefix(normalize.StripLineNumbers(req.OldText), "\\\n")
	newText := strings.TrimPrefix(normalize.StripLineNumbers(req.NewText), "\\\n")

	lines := strings.Split(old, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	keys := make([]string, len(lines))
	for i, line := range lines {
		keys[i] = normalize.StripAll(line)
	}

	p := &Pattern{
		OldOriginal: lines,
		Keys:        keys,
		NewText:     newText,
		RunBuffer:   normalize.StripVarying(strings.Join(lines, "\n")),
	}
	p.hintIdx, p.hasHint = req.Hint()
	return p
}

// SingleLine reports whether the pattern is a single-line replacement.
func (p *Pattern) SingleLine() bool {
	return len(p.Keys) == 1
}

// ScanBounds returns the inclusive 0-based index range candidate starts are
// drawn from, applying the hint window when a hint is present.
func (p *Pattern) ScanBounds(lineCount int) (start, end int) {
	start, end = 0, lineCount-1
	if !p.hasHint {
		return start, end
	}
	start = p.hintIdx - hintBacktrack
	if start < 0 {
		start = 0
	}
	window := hintWindowMultiLine
	if p.SingleLine() {
		window = hintWindowSingle
	}
	if cutoff := p.hintIdx + window; cutoff < end {
		end = cutoff
	}
	return start, end
}

// checkAmbiguity enforces the single hard-ambiguity rule: a single-line
// pattern with no hint that matches more than one file line must fail with
// every matching line number so the caller can supply start_line.
func (p *Pattern) checkAmbiguity(f *File) error {
	if !p.SingleLine() || p.hasHint || p.Keys[0] == "" {
		return nil
	}
	var matches []int
	for i, key := range f.NormLines() {
		if key == p.Keys[0] {
			matches = append(matches, i+1)
		}
	}
	if len(matches) > 1 {
		return &types.AmbiguousMatchError{Lines: matches}
	}
	return nil
}
