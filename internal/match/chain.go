// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R3 (ordered strategy chain).
package match

import (
	"github.com/petar-djukic/go-edit/pkg/types"
)

// Result describes a successful match: the rewritten file content, the tier
// and splice strategy that produced it, and the region of the new content
// that changed (for snippet windowing).
type Result struct {
	Content  string
	Tier     types.Tier
	Strategy types.SpliceStrategy
	NewStart int // First changed line in the new content (0-based)
	NewEnd   int // Last changed line in the new content (0-based)
}

// Config adjusts matching behavior per editor instance.
type Config struct {
	// Tolerance overrides DefaultTolerance for the fuzzy line tier. Zero
	// or negative keeps the default.
	Tolerance float64
}

// state carries the per-request data threaded through the strategy chain.
// The Pattern is built lazily so the exact and whitespace tiers, which work
// on the raw texts, never pay for it.
type state struct {
	req       types.EditRequest
	file      *File
	tolerance float64
	pat       *Pattern
	best      *types.DivergenceReport
}

// pattern builds the shared preprocessed pattern on first use and runs the
// single-line ambiguity check, which must short-circuit both normalized
// tiers.
func (st *state) pattern() (*Pattern, error) {
	if st.pat == nil {
		st.pat = NewPattern(st.req)
		if err := st.pat.checkAmbiguity(st.file); err != nil {
			return nil, err
		}
	}
	return st.pat, nil
}

// strategy is one tier of the chain. A nil Result with a nil error means
// the tier found nothing and the chain moves on.
type strategy interface {
	tryMatch(st *state) (*Result, error)
}

// chain lists the tiers in priority order. Exact has absolute priority;
// the contiguous-run tier sits ahead of the fuzzy-line tier so a fully
// consumed run window wins over any fuzzy anchor.
var chain = []strategy{
	exactStrategy{},
	whitespaceStrategy{},
	contiguousRunStrategy{},
	fuzzyLineStrategy{},
}

// Find runs the strategy chain against the file and returns the first
// successful result. On failure it returns the best divergence report seen
// across all fuzzy anchors, for the caller's diagnostic message. The only
// error ever returned is *types.AmbiguousMatchError.
func Find(req types.EditRequest, f *File, cfg Config) (*Result, *types.DivergenceReport, error) {
	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	st := &state{req: req, file: f, tolerance: tolerance}
	for _, s := range chain {
		r, err := s.tryMatch(st)
		if err != nil {
			return nil, nil, err
		}
		if r != nil {
			return r, nil, nil
		}
	}
	return nil, st.best, nil
}
