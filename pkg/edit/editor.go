// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package edit exposes the file-editing operations consumed by an agent's
// tool-call layer: view, create, str_replace, and insert. All four return
// plain strings; semantic failures (no match, ambiguity, invalid ranges)
// are reported in the string, and only genuine I/O failures come back as a
// non-nil error. Callers distinguish outcomes by message prefix ("has been
// edited", "Invalid", "No replacement was performed").
//
// Implements: prd001-edit-operations R1-R5; prd003-concurrency R1, R2.
package edit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/petar-djukic/go-edit/internal/fileio"
	"github.com/petar-djukic/go-edit/internal/logging"
	"github.com/petar-djukic/go-edit/internal/match"
	"github.com/petar-djukic/go-edit/internal/pathlock"
	"github.com/petar-djukic/go-edit/internal/snippet"
	"github.com/petar-djukic/go-edit/pkg/types"
)

// Editor applies edits to files on disk. The zero value is ready to use.
type Editor struct {
	// WorkDir resolves relative paths. Empty means the current directory.
	WorkDir string
	// ContextLines is the snippet context on each side of an edit.
	// Defaults to snippet.DefaultContext if zero.
	ContextLines int
	// FuzzyTolerance is the fuzzy line tier's per-line edit-distance
	// tolerance, as a fraction of the candidate line's length. Defaults to
	// match.DefaultTolerance if zero.
	FuzzyTolerance float64
	// Logger receives debug events (which tier matched, where). Defaults
	// to the package logger.
	Logger *log.Logger

	locks pathlock.Map
}

// View returns a file's content in cat -n format, or a two-level listing
// for directories. viewRange is an optional 1-based [start, end] pair;
// end == -1 means end of file.
func (e *Editor) View(path string, viewRange []int) (string, error) {
	target := fileio.Resolve(e.WorkDir, path)

	if fileio.IsDir(target) {
		if len(viewRange) > 0 {
			return "Invalid `view_range` parameter: it cannot be used when viewing a directory.", nil
		}
		entries, err := fileio.ListDepth2(target)
		if err != nil {
			return "", err
		}
		return snippet.ViewDir(target, entries), nil
	}

	content, err := fileio.Read(target)
	if err != nil {
		return "", err
	}
	lines := strings.Split(content, "\n")

	start, end := 0, len(lines)-1
	if len(viewRange) > 0 {
		if len(viewRange) != 2 {
			return "Invalid `view_range` parameter: it should be an array of two integers.", nil
		}
		first, last := viewRange[0], viewRange[1]
		if first < 1 || first > len(lines) {
			return fmt.Sprintf("Invalid `view_range` parameter: its first element `%d` should be within the range of lines of the file: [1, %d].", first, len(lines)), nil
		}
		if last != -1 {
			if last < first {
				return fmt.Sprintf("Invalid `view_range` parameter: its second element `%d` should be greater than or equal to its first element `%d`.", last, first), nil
			}
			if last > len(lines) {
				return fmt.Sprintf("Invalid `view_range` parameter: its second element `%d` should not exceed the number of lines in the file: `%d`.", last, len(lines)), nil
			}
			end = last - 1
		}
		start = first - 1
	}

	return snippet.ViewFile(target, lines, start, end), nil
}

// Create writes a new file with the given content, creating parent
// directories as needed. Overwriting an existing file is rejected.
func (e *Editor) Create(path, fileText string) (string, error) {
	target := fileio.Resolve(e.WorkDir, path)

	if fileio.IsDir(target) {
		return fmt.Sprintf("Invalid `path` parameter: %s is a directory.", target), nil
	}
	if fileio.Exists(target) {
		return fmt.Sprintf("Invalid `path` parameter: file already exists at %s. Cannot overwrite an existing file with `create`.", target), nil
	}

	if err := fileio.Create(target, []byte(fileText)); err != nil {
		return "", err
	}
	return snippet.Created(target), nil
}

// StrReplace locates req.OldText in the file through the matching tiers and
// replaces it with req.NewText. The per-path lock is held from before the
// read until after the write, so concurrent calls against the same path
// serialize; calls against different paths run concurrently.
func (e *Editor) StrReplace(req types.EditRequest) (string, error) {
	if req.OldText == "" {
		return "Invalid `old_str` parameter: it must be non-empty.", nil
	}
	if req.OldText == req.NewText {
		return snippet.NoOp(), nil
	}

	target := fileio.Resolve(e.WorkDir, req.Path)

	release := e.locks.Acquire(target)
	defer release()

	content, err := fileio.Read(target)
	if err != nil {
		return "", err
	}

	result, divergence, err := match.Find(req, match.NewFile(content), match.Config{Tolerance: e.FuzzyTolerance})
	if err != nil {
		var ambiguous *types.AmbiguousMatchError
		if errors.As(err, &ambiguous) {
			return snippet.Ambiguous(ambiguous.Lines), nil
		}
		return "", err
	}
	if result == nil {
		return snippet.NoMatch(target, divergence), nil
	}

	if err := fileio.WriteAtomic(target, []byte(result.Content)); err != nil {
		return "", err
	}

	e.logger().Debug("replacement applied",
		logging.FieldPath, target,
		logging.FieldTier, result.Tier.String(),
		logging.FieldStrategy, result.Strategy.String(),
		logging.FieldStartLine, result.NewStart+1,
		logging.FieldEndLine, result.NewEnd+1,
	)

	lines := strings.Split(result.Content, "\n")
	return snippet.Edited(target, lines, result.NewStart, result.NewEnd, e.ContextLines), nil
}

// Insert splices newStr's lines after line insertLine (0 inserts at the top
// of the file). insertLine is bounds-checked against [0, lineCount].
func (e *Editor) Insert(path string, insertLine int, newStr string) (string, error) {
	target := fileio.Resolve(e.WorkDir, path)

	content, err := fileio.Read(target)
	if err != nil {
		return "", err
	}
	lines := strings.Split(content, "\n")

	if insertLine < 0 || insertLine > len(lines) {
		return fmt.Sprintf("Invalid `insert_line` parameter: %d. It should be within the range of lines of the file: [0, %d].", insertLine, len(lines)), nil
	}

	newLines := strings.Split(newStr, "\n")
	out := make([]string, 0, len(lines)+len(newLines))
	out = append(out, lines[:insertLine]...)
	out = append(out, newLines...)
	out = append(out, lines[insertLine:]...)

	if err := fileio.WriteAtomic(target, []byte(strings.Join(out, "\n"))); err != nil {
		return "", err
	}

	e.logger().Debug("lines inserted",
		logging.FieldPath, target,
		logging.FieldStartLine, insertLine+1,
		logging.FieldLines, len(newLines),
	)

	return snippet.Edited(target, out, insertLine, insertLine+len(newLines)-1, e.ContextLines), nil
}

func (e *Editor) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logging.Default()
}
