// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"os"
	"sync"
)

// MockFileSystem is a test double for FileSystem. A non-nil function field
// replaces the matching method; nil fields fall through to OsFileSystem so
// tests only override what they care about.
type MockFileSystem struct {
	StatFn     func(name string) (os.FileInfo, error)
	ReadFileFn func(name string) ([]byte, error)
	CreateFn   func(name string) (*os.File, error)

	mu    sync.Mutex
	reads []string
}

var real OsFileSystem

// Stat calls StatFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return real.Stat(name)
}

// ReadFile calls ReadFileFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	m.reads = append(m.reads, name)
	m.mu.Unlock()
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return real.ReadFile(name)
}

// Reads returns every path passed to ReadFile so far.
func (m *MockFileSystem) Reads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.reads))
	copy(out, m.reads)
	return out
}

// Create calls CreateFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Create(name string) (*os.File, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return real.Create(name)
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)
