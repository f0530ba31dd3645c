// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package snippet builds the user-facing result messages: line-numbered
// snippet windows after successful edits and the diagnostic text for
// failures. Message prefixes ("has been edited", "Invalid", "No replacement
// was performed") are a compatibility contract with callers that
// pattern-match on them.
//
// Implements: prd001-edit-operations R4.
package snippet

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/go-edit/pkg/types"
)

// DefaultContext is the number of context lines shown on each side of the
// edited region.
const DefaultContext = 4

// Numbered renders lines[start..end] (0-based, inclusive) in cat -n format.
// Line numbers are 1-based.
func Numbered(lines []string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}
	var b strings.Builder
	for i := start; i <= end; i++ {
		fmt.Fprintf(&b, "%6d\t%s\n", i+1, lines[i])
	}
	return b.String()
}

// Window renders a numbered snippet of context lines around the edited
// region [editStart, editEnd].
func Window(lines []string, editStart, editEnd, context int) string {
	if context <= 0 {
		context = DefaultContext
	}
	return Numbered(lines, editStart-context, editEnd+context)
}

// Edited builds the success message for str_replace and insert.
func Edited(path string, lines []string, editStart, editEnd, context int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The file %s has been edited. ", path)
	fmt.Fprintf(&b, "Here's the result of running `cat -n` on a snippet of %s:\n", path)
	b.WriteString(Window(lines, editStart, editEnd, context))
	b.WriteString("Review the changes and make sure they are as expected. Edit the file again if necessary.")
	return b.String()
}

// Created builds the success message for create.
func Created(path string) string {
	return fmt.Sprintf("File created successfully at: %s", path)
}

// ViewFile builds the view message for a file.
func ViewFile(path string, lines []string, start, end int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's the result of running `cat -n` on %s:\n", path)
	b.WriteString(Numbered(lines, start, end))
	return b.String()
}

// ViewDir builds the view message for a directory listing.
func ViewDir(path string, entries []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's the files and directories up to 2 levels deep in %s, excluding hidden items:\n", path)
	for _, e := range entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return b.String()
}

// NoOp is returned when old and new text are identical. No I/O is performed.
func NoOp() string {
	return "No replacement was performed. `old_str` and `new_str` are exactly the same."
}

// Ambiguous lists every line a single-line pattern matched so the caller
// can disambiguate with start_line.
func Ambiguous(lines []int) string {
	nums := make([]string, len(lines))
	for i, n := range lines {
		nums[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf(
		"No replacement was performed. Multiple occurrences of `old_str` were found on lines [%s]. "+
			"Please provide `start_line` to disambiguate which occurrence to replace.",
		strings.Join(nums, ", "))
}

// NoMatch builds the diagnostic when every tier failed, including the best
// partial alignment when one was seen.
func NoMatch(path string, div *types.DivergenceReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "No replacement was performed. `old_str` was not found in %s.\n", path)
	if div != nil {
		b.WriteString(div.Render())
	}
	b.WriteString("Re-read the file and ensure `old_str` matches the current content exactly.")
	return b.String()
}
