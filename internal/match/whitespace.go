// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R4.2 (whitespace-normalized tier).
package match

import (
	"strings"

	"github.com/petar-djukic/go-edit/internal/normalize"
	"github.com/petar-djukic/go-edit/pkg/types"
)

// windowSlack is how many lines beyond the old text's own line count a
// candidate window may grow. Collapsed whitespace can merge or split lines,
// so the matching span in the original file is not always the same height
// as the pattern.
const windowSlack = 5

// whitespaceStrategy ignores all whitespace differences. It first checks
// containment on the run-collapsed document, then slides a line window over
// the original file to find the span whose collapsed form equals the
// collapsed old text. First window wins; this tier has no ambiguity check.
type whitespaceStrategy struct{}

func (whitespaceStrategy) tryMatch(st *state) (*Result, error) {
	normOld := normalize.CollapseRuns(st.req.OldText)
	if normOld == "" {
		return nil, nil
	}
	if !strings.Contains(normalize.CollapseRuns(st.file.Content), normOld) {
		return nil, nil
	}

	maxWindow := len(strings.Split(st.req.OldText, "\n")) + windowSlack
	lines := st.file.Lines
	for start := 0; start < len(lines); start++ {
		limit := start + maxWindow
		if limit > len(lines) {
			limit = len(lines)
		}
		for end := start; end < limit; end++ {
			candidate := strings.Join(lines[start:end+1], "\n")
			if normalize.CollapseRuns(candidate) != normOld {
				continue
			}
			content, newEnd := spliceReplaceLines(lines, start, end, st.req.NewText)
			return &Result{
				Content:  content,
				Tier:     types.TierWhitespaceNormalized,
				Strategy: types.ReplaceLines,
				NewStart: start,
				NewEnd:   newEnd,
			}, nil
		}
	}

	// The collapsed document contained the pattern but no line window lined
	// up with it (the match straddles a line boundary mid-token). Fall
	// through silently.
	return nil, nil
}

// spliceReplaceLines removes lines[start..end] and inserts newText's lines
// verbatim. Returns the joined content and the 0-based index of the last
// inserted line in the new content.
func spliceReplaceLines(lines []string, start, end int, newText string) (string, int) {
	newLines := strings.Split(newText, "\n")
	out := make([]string, 0, len(lines)-(end-start+1)+len(newLines))
	out = append(out, lines[:start]...)
	out = append(out, newLines...)
	out = append(out, lines[end+1:]...)
	return strings.Join(out, "\n"), start + len(newLines) - 1
}
