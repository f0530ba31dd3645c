// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-engine R4.3 (contiguous-run tier).
package match

import (
	"strings"

	"github.com/petar-djukic/go-edit/pkg/types"
)

// contiguousRunStrategy treats the entire normalized old text as one
// character buffer and walks the file line by line, greedily consuming a
// buffer prefix per line. A fully consumed buffer yields an authoritative
// replace-lines window. It uses the StripVarying key, so quoting differences
// between the model's rendering and the source do not break the run.
type contiguousRunStrategy struct{}

func (contiguousRunStrategy) tryMatch(st *state) (*Result, error) {
	p, err := st.pattern()
	if err != nil {
		return nil, err
	}
	if p.RunBuffer == "" {
		return nil, nil
	}

	runLines := st.file.RunLines()
	scanStart, scanEnd := p.ScanBounds(len(runLines))
	for i := scanStart; i <= scanEnd && i < len(runLines); i++ {
		end, ok := consumeFrom(runLines, p.RunBuffer, i)
		if !ok {
			continue
		}
		content, newEnd := spliceReplaceLines(st.file.Lines, i, end, p.NewText)
		return &Result{
			Content:  content,
			Tier:     types.TierContiguousRun,
			Strategy: types.ReplaceLines,
			NewStart: i,
			NewEnd:   newEnd,
		}, nil
	}
	return nil, nil
}

// consumeFrom advances a cursor through buf, consuming one normalized file
// line per step starting at line index start. It returns the index of the
// last consumed line when the buffer is fully consumed. Any divergence
// resets the search to the caller's next start index.
//
// One tolerance transition exists: when the file line carries a trailing
// comma but the buffer expects a closing paren next, the comma is skipped.
// This handles function-call argument lists that were reformatted onto one
// line in the model's rendering.
func consumeFrom(runLines []string, buf string, start int) (end int, ok bool) {
	pos := 0
	for j := start; j < len(runLines); j++ {
		line := runLines[j]
		if line == "" {
			if pos == 0 {
				// An anchor line must consume something.
				return 0, false
			}
			continue
		}

		rem := buf[pos:]
		switch {
		case strings.HasPrefix(rem, line):
			pos += len(line)
		case strings.HasSuffix(line, ","):
			trimmed := line[:len(line)-1]
			if strings.HasPrefix(rem, trimmed) && strings.HasPrefix(rem[len(trimmed):], ")") {
				pos += len(trimmed)
				break
			}
			return 0, false
		default:
			return 0, false
		}

		if pos >= len(buf) {
			return j, true
		}
	}
	return 0, false
}
