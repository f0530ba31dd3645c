// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R4.1 (exact tier).
package match

import (
	"strings"

	"github.com/petar-djukic/go-edit/pkg/types"
)

// exactStrategy is the fast path: a literal substring match. Every
// occurrence is replaced, not just the first. Keeping split/join semantics
// makes repeated identical edits predictable when the same literal string
// appears multiple times.
type exactStrategy struct{}

func (exactStrategy) tryMatch(st *state) (*Result, error) {
	idx := strings.Index(st.file.Content, st.req.OldText)
	if idx < 0 {
		return nil, nil
	}

	start := strings.Count(st.file.Content[:idx], "\n")
	end := start + strings.Count(st.req.NewText, "\n")

	return &Result{
		Content:  strings.ReplaceAll(st.file.Content, st.req.OldText, st.req.NewText),
		Tier:     types.TierExact,
		Strategy: types.ReplaceLines,
		NewStart: start,
		NewEnd:   end,
	}, nil
}
