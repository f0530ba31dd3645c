// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R5.4 (edit-distance tolerance).
package match

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultTolerance is the fraction of a candidate line's length that the
// Levenshtein distance must stay under for the line to count as matching.
// Overridable per request via Config.Tolerance.
const DefaultTolerance = 0.05

// levenshtein computes the edit distance between two strings using the
// go-diff library.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	dmp := diffmatchpatch.New()
	return dmp.DiffLevenshtein(dmp.DiffMain(a, b, false))
}

// closeEnough reports whether key matches candidate: identical, or within
// tolerance of the candidate's length by edit distance. The length
// difference alone is a lower bound on the distance, so candidates that
// cannot possibly pass are rejected without running the diff.
func closeEnough(key, candidate string, tolerance float64) bool {
	if key == candidate {
		return true
	}
	if candidate == "" {
		return false
	}
	maxDist := tolerance * float64(len(candidate))
	diff := len(key) - len(candidate)
	if diff < 0 {
		diff = -diff
	}
	if float64(diff) >= maxDist {
		return false
	}
	return float64(levenshtein(key, candidate)) < maxDist
}
