// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R5 (fuzzy line tier).
package match

import (
	"strings"

	"github.com/petar-djukic/go-edit/pkg/types"
)

// Trailing truncation tolerance: once this many lines of a block have
// matched and less than tailFraction of the block remains unchecked, the
// remainder is accepted. Very large pasted blocks are frequently truncated
// by the model near the end.
const (
	tailMinMatched = 30
	tailFraction   = 0.01
)

// fuzzyLineStrategy aligns the pattern line by line against the file. A
// candidate anchor is any file line close enough to the pattern's first
// line; from each anchor it walks forward through every pattern line with
// per-line edit-distance tolerance. The first anchor that matches the whole
// pattern wins. Failed walks feed the divergence report used in the final
// diagnostic.
type fuzzyLineStrategy struct{}

func (fuzzyLineStrategy) tryMatch(st *state) (*Result, error) {
	p, err := st.pattern()
	if err != nil {
		return nil, err
	}
	f := st.file
	normLines := f.NormLines()
	scanStart, scanEnd := p.ScanBounds(len(normLines))

	var inLine *Result
	for i := scanStart; i <= scanEnd && i < len(normLines); i++ {
		if closeEnough(p.Keys[0], normLines[i], st.tolerance) {
			if end, ok := walkFrom(p, f, i, st.tolerance, &st.best); ok {
				return spliceResult(p, f, types.MatchWindow{
					StartLine: i,
					EndLine:   end,
					Strategy:  types.ReplaceLines,
				}), nil
			}
			continue
		}
		// A single-line pattern contained inside a longer line is a
		// narrower in-line substitution. Recorded, not returned: a full
		// replace-lines anchor later in the scan still takes priority.
		if p.SingleLine() && inLine == nil && p.Keys[0] != "" && strings.Contains(normLines[i], p.Keys[0]) {
			inLine = spliceResult(p, f, types.MatchWindow{
				StartLine: i,
				EndLine:   i,
				Strategy:  types.ReplaceInLine,
			})
		}
	}

	if inLine != nil {
		return inLine, nil
	}

	// Degenerate deletion: nothing anchored, but the request deletes a
	// single line and the caller told us where it is.
	if p.NewText == "" && p.SingleLine() && p.hasHint &&
		p.hintIdx >= 0 && p.hintIdx < len(f.Lines) {
		return spliceResult(p, f, types.MatchWindow{
			StartLine: p.hintIdx,
			EndLine:   p.hintIdx,
			Strategy:  types.DeleteLine,
		}), nil
	}

	return nil, nil
}

// walkFrom attempts to match every pattern line starting at file line
// anchor. On divergence it records the best partial alignment into best and
// reports failure.
func walkFrom(p *Pattern, f *File, anchor int, tolerance float64, best **types.DivergenceReport) (end int, ok bool) {
	normLines := f.NormLines()
	total := len(p.Keys)

	for j := 0; j < total; j++ {
		idx := anchor + j
		if idx < len(normLines) && closeEnough(p.Keys[j], normLines[idx], tolerance) {
			continue
		}
		if j >= tailMinMatched && float64(total-j) < tailFraction*float64(total) {
			// Trailing truncation noise in a very large block.
			break
		}

		actual := "<end of file>"
		if idx < len(f.Lines) {
			actual = f.Lines[idx]
		}
		d := &types.DivergenceReport{
			MatchingLineCount: j,
			ExpectedLine:      p.OldOriginal[j],
			ActualLine:        actual,
			RemainingExpected: p.OldOriginal[j+1:],
		}
		if d.Better(*best) {
			*best = d
		}
		return 0, false
	}

	end = anchor + total - 1
	if end >= len(f.Lines) {
		end = len(f.Lines) - 1
	}
	return end, true
}

// spliceResult applies the window's splice strategy to the file and wraps
// the rewritten content in a Result.
func spliceResult(p *Pattern, f *File, w types.MatchWindow) *Result {
	r := &Result{Tier: types.TierFuzzyLine, Strategy: w.Strategy}

	switch w.Strategy {
	case types.ReplaceInLine:
		// Only the first new line substitutes for the old substring; any
		// further new lines are inserted after the edited line rather than
		// substring-replaced.
		newLines := strings.Split(p.NewText, "\n")
		edited := strings.Replace(f.Lines[w.StartLine], p.OldOriginal[0], newLines[0], 1)
		out := make([]string, 0, len(f.Lines)+len(newLines)-1)
		out = append(out, f.Lines[:w.StartLine]...)
		out = append(out, edited)
		out = append(out, newLines[1:]...)
		out = append(out, f.Lines[w.StartLine+1:]...)
		r.Content = strings.Join(out, "\n")
		r.NewStart = w.StartLine
		r.NewEnd = w.StartLine + len(newLines) - 1

	case types.DeleteLine:
		out := make([]string, 0, len(f.Lines)-1)
		out = append(out, f.Lines[:w.StartLine]...)
		out = append(out, f.Lines[w.StartLine+1:]...)
		r.Content = strings.Join(out, "\n")
		r.NewStart = w.StartLine
		r.NewEnd = w.StartLine
		if r.NewEnd >= len(out) && len(out) > 0 {
			r.NewStart = len(out) - 1
			r.NewEnd = len(out) - 1
		}

	default: // types.ReplaceLines
		content, newEnd := spliceReplaceLines(f.Lines, w.StartLine, w.EndLine, p.NewText)
		r.Content = content
		r.NewStart = w.StartLine
		r.NewEnd = newEnd
	}

	return r
}
