// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-edit-operations R1 (EditRequest);
//
//	prd002-match-engine R1 (MatchWindow, SpliceStrategy, Tier);
//	prd002-match-engine R6 (DivergenceReport).
package types

import (
	"fmt"
	"strings"
)

// EditRequest describes a single str_replace operation against one file.
type EditRequest struct {
	Path    string // Target file path
	OldText string // Text to locate (approximate, as rendered by the model)
	NewText string // Replacement text, inserted verbatim
	// StartLineHint is an optional 1-based line number near which the match
	// is expected. Models are frequently off by a few lines, so the hint is
	// treated as approximate rather than exact.
	StartLineHint *int
}

// Hint returns the 0-based line index of the hint and whether one was given.
func (r EditRequest) Hint() (int, bool) {
	if r.StartLineHint == nil {
		return 0, false
	}
	return *r.StartLineHint - 1, true
}

// SpliceStrategy identifies how a located MatchWindow is spliced into the file.
type SpliceStrategy int

const (
	ReplaceLines  SpliceStrategy = iota // Remove the window, insert replacement lines
	ReplaceInLine                       // Substring substitution inside a single line
	DeleteLine                          // Remove exactly one line, insert nothing
)

func (s SpliceStrategy) String() string {
	switch s {
	case ReplaceLines:
		return "replace-lines"
	case ReplaceInLine:
		return "replace-in-line"
	case DeleteLine:
		return "delete-line"
	default:
		return "unknown"
	}
}

// Tier identifies which matching strategy located the edit region.
type Tier int

const (
	TierExact                Tier = iota // Byte-for-byte substring match
	TierWhitespaceNormalized             // Whitespace-run-collapsed match
	TierContiguousRun                    // Full-document character-run match
	TierFuzzyLine                        // Line-by-line alignment with edit-distance tolerance
	TierNone                             // No tier matched
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierWhitespaceNormalized:
		return "whitespace_normalized"
	case TierContiguousRun:
		return "contiguous_run"
	case TierFuzzyLine:
		return "fuzzy_line"
	case TierNone:
		return "none"
	default:
		return "unknown"
	}
}

// MatchWindow identifies the located region of the file and how to splice it.
// Line indexes are 0-based; they are converted to 1-based only when rendered
// into user-facing messages.
type MatchWindow struct {
	StartLine int
	EndLine   int
	Strategy  SpliceStrategy
}

// DivergenceReport records the best partial alignment seen while fuzzy
// matching failed. It is used only to build the final diagnostic message.
type DivergenceReport struct {
	MatchingLineCount int      // Lines that agreed before the divergence
	ExpectedLine      string   // The pattern line that failed to match
	ActualLine        string   // The file line it was compared against
	RemainingExpected []string // Pattern lines that were never reached
}

// Better reports whether d should replace prev as the retained diagnostic.
// The report with the highest MatchingLineCount wins; ties keep the first.
func (d *DivergenceReport) Better(prev *DivergenceReport) bool {
	return prev == nil || d.MatchingLineCount > prev.MatchingLineCount
}

// Render formats the report for inclusion in a no-match diagnostic.
func (d *DivergenceReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The closest alignment matched %d line(s) before diverging.\n", d.MatchingLineCount)
	fmt.Fprintf(&b, "Expected: %s\n", d.ExpectedLine)
	fmt.Fprintf(&b, "Found:    %s\n", d.ActualLine)
	if len(d.RemainingExpected) > 0 {
		b.WriteString("Lines still unmatched after the divergence:\n")
		for _, line := range d.RemainingExpected {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}

// AmbiguousMatchError is returned when a single-line pattern matches more
// than one file line and no start-line hint was given to disambiguate.
type AmbiguousMatchError struct {
	Lines []int // 1-based line numbers of every match
}

func (e *AmbiguousMatchError) Error() string {
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("multiple occurrences found on lines [%s]", strings.Join(nums, ", "))
}
