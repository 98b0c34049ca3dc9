// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

// Package report builds the congestion pricing review as a Document: a
// header, a metrics snapshot, a set of pluggable analytical sections and a
// footer. Rendering the Document to a concrete format is left to the output
// package.
package report

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
)

// Figures maps each artifact a section asked for to its lookup result.
type Figures map[artifact.Name]artifact.Result

// Section is a pluggable report section. Build must be a pure function of
// its inputs so repeated render passes produce identical output.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "weather-impact").
	Name() string

	// Title returns the heading shown above the section.
	Title() string

	// Icon returns a short decorative glyph shown before the title.
	Icon() string

	// Expanded reports whether the section is open by default.
	Expanded() bool

	// Figures lists the chart artifacts the section embeds.
	Figures() []artifact.Name

	// Build produces the section body from the summary row and the
	// resolved figures.
	Build(stats *summary.Statistics, figs Figures) []Block
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ResolveSections returns the sections named in filter, in registration
// order. An empty filter selects every section. Unknown names are an error.
func ResolveSections(filter []string) ([]Section, error) {
	names := List()
	if len(filter) > 0 {
		wanted := make(map[string]bool, len(filter))
		var unknown []string
		for _, name := range filter {
			if Get(name) == nil {
				unknown = append(unknown, name)
				continue
			}
			wanted[name] = true
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, fmt.Errorf("unknown section(s): %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(List(), ", "))
		}
		kept := names[:0]
		for _, name := range names {
			if wanted[name] {
				kept = append(kept, name)
			}
		}
		names = kept
	}

	out := make([]Section, 0, len(names))
	for _, name := range names {
		out = append(out, Get(name))
	}
	return out, nil
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
