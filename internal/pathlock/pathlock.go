// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathlock serializes edits per file path. Concurrent str_replace
// calls against the same path queue and run one at a time; calls against
// different paths proceed independently. Entries are refcounted so the map
// does not grow with every path ever edited.
//
// Implements: prd003-concurrency R1.
package pathlock

import (
	"path/filepath"
	"sync"
)

// Map is a set of advisory locks keyed by cleaned file path. The zero
// value is ready to use.
type Map struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// Acquire blocks until the lock for path is held and returns the release
// function. Callers must release on every exit path; pairing Acquire with
// defer at function entry guarantees that.
func (m *Map) Acquire(path string) (release func()) {
	key := filepath.Clean(path)

	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[string]*entry)
	}
	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.entries, key)
			}
			m.mu.Unlock()
		})
	}
}
