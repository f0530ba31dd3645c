// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-edit/pkg/types"
)

func intPtr(n int) *int { return &n }

func find(t *testing.T, content string, req types.EditRequest) (*Result, *types.DivergenceReport, error) {
	t.Helper()
	return Find(req, NewFile(content), Config{})
}

func TestExactTier(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		old         string
		new         string
		wantContent string
	}{
		{
			name:        "single occurrence",
			content:     "timeout: 30\nretries: 3\n",
			old:         "retries: 3",
			new:         "retries: 5",
			wantContent: "timeout: 30\nretries: 5\n",
		},
		{
			name:        "replaces every occurrence",
			content:     "a: 1\nb: 2\na: 1\n",
			old:         "a: 1",
			new:         "a: 99",
			wantContent: "a: 99\nb: 2\na: 99\n",
		},
		{
			name:        "multi-line block",
			content:     "func main() {\n\trun()\n}\n",
			old:         "func main() {\n\trun()\n}",
			new:         "func main() {\n\tstart()\n}",
			wantContent: "func main() {\n\tstart()\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, div, err := find(t, tt.content, types.EditRequest{OldText: tt.old, NewText: tt.new})
			require.NoError(t, err)
			require.NotNil(t, r)
			assert.Nil(t, div)
			assert.Equal(t, types.TierExact, r.Tier)
			assert.Equal(t, tt.wantContent, r.Content)
		})
	}
}

func TestExactTierHasPriority(t *testing.T) {
	// The file carries both a verbatim occurrence and a near-duplicate with
	// different whitespace. Only the verbatim region may change.
	content := "    value = compute()\nvalue = compute()\nfooter\n"
	r, _, err := find(t, content, types.EditRequest{
		OldText: "value = compute()",
		NewText: "value = recompute()",
	})
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, types.TierExact, r.Tier)
	// Exact replacement is substring-based, so the indented occurrence's
	// trailing match also changes; both verbatim substrings are replaced,
	// but the indentation itself is untouched.
	assert.Contains(t, r.Content, "    value = recompute()")
	assert.Contains(t, r.Content, "\nvalue = recompute()")
}

func TestWhitespaceTier(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		old         string
		new         string
		wantContent string
	}{
		{
			name:        "tabs in file, spaces in pattern",
			content:     "\tfoo(bar)\n\tbaz()\nend\n",
			old:         "  foo(bar)\n  baz()",
			new:         "foo(qux)",
			wantContent: "foo(qux)\nend\n",
		},
		{
			name:        "extra spaces inside pattern lines collapse",
			content:     "timeout: 30\nretries: 3\n",
			old:         "timeout:   30\nretries:  3",
			new:         "timeout: 60\nretries: 5",
			wantContent: "timeout: 60\nretries: 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, err := find(t, tt.content, types.EditRequest{OldText: tt.old, NewText: tt.new})
			require.NoError(t, err)
			require.NotNil(t, r)
			assert.Equal(t, types.TierWhitespaceNormalized, r.Tier)
			assert.Equal(t, tt.wantContent, r.Content)
		})
	}
}

func TestWhitespaceTierInsertsNewTextVerbatim(t *testing.T) {
	content := "\tif ready {\n\t\tstart()\n\t}\n"
	newText := "  if ready {\n      start()\n  }"
	r, _, err := find(t, content, types.EditRequest{
		OldText: "if ready {\n  start()\n}",
		NewText: newText,
	})
	require.NoError(t, err)
	require.NotNil(t, r)
	// No re-indentation: the replacement goes in exactly as given.
	assert.Contains(t, r.Content, newText)
}

func TestWhitespaceTierFirstWindowWins(t *testing.T) {
	// Both spans normalize to the same text; the earlier one is taken
	// without any ambiguity check at this tier.
	content := "\talpha()\n\tnext()\nmiddle\n  alpha()\n  next()\n"
	r, _, err := find(t, content, types.EditRequest{
		OldText: " alpha()\n next()",
		NewText: "beta()",
	})
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, types.TierWhitespaceNormalized, r.Tier)
	assert.Equal(t, "beta()\nmiddle\n  alpha()\n  next()\n", r.Content)
}

func TestNoMatchReturnsNil(t *testing.T) {
	content := "completely different content\n"
	r, _, err := find(t, content, types.EditRequest{
		OldText: "this text exists nowhere in the file",
		NewText: "replacement",
	})
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestLineCountOutsideWindowPreserved(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "\tkeep this line")
	}
	lines[10] = "\treplace me here"
	content := strings.Join(lines, "\n") + "\n"

	r, _, err := find(t, content, types.EditRequest{
		OldText: "  replace me here",
		NewText: "\treplaced",
	})
	require.NoError(t, err)
	require.NotNil(t, r)

	got := strings.Split(r.Content, "\n")
	want := strings.Split(content, "\n")
	assert.Len(t, got, len(want))
	assert.Equal(t, "\treplaced", got[10])
	assert.Equal(t, want[:10], got[:10])
	assert.Equal(t, want[11:], got[11:])
}
