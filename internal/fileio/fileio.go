// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fileio holds the file primitives the edit engine calls into:
// reads, atomic writes, path resolution, and the two-level directory
// listing used by view.
//
// Implements: prd001-edit-operations R5.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve joins a relative path onto workdir; absolute paths pass through
// cleaned.
func Resolve(workdir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if workdir == "" {
		workdir = "."
	}
	return filepath.Join(workdir, path)
}

// Read returns the file's content as a string.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteAtomic writes data to a temp file in the same directory, then
// renames it over the target. Partial writes never corrupt the target, and
// the original file's permissions are preserved.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".go-edit-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Create writes a new file, creating parent directories as needed.
func Create(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	return WriteAtomic(path, data)
}

// ListDepth2 lists entries under dir up to two levels deep, excluding
// hidden entries. Directories carry a trailing separator. Entries are
// sorted within each level.
func ListDepth2(dir string) ([]string, error) {
	top, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var out []string
	sortEntries(top)
	for _, e := range top {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		if e.IsDir() {
			out = append(out, name+string(filepath.Separator))
			sub, err := os.ReadDir(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			sortEntries(sub)
			for _, s := range sub {
				if strings.HasPrefix(s.Name(), ".") {
					continue
				}
				child := filepath.Join(name, s.Name())
				if s.IsDir() {
					child += string(filepath.Separator)
				}
				out = append(out, child)
			}
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

func sortEntries(entries []os.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
}
