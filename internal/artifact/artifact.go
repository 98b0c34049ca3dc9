// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

// Package artifact resolves the pre-rendered chart images the report embeds.
// Artifacts are produced by the upstream pipeline; this package only reads them.
package artifact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/tollview/internal/testable"
)

// Name is the logical name of a chart artifact.
type Name string

// The six charts the report knows about.
const (
	BorderEffect     Name = "border_effect"
	SpeedHeatmap2024 Name = "speed_heatmap_2024"
	SpeedHeatmap2025 Name = "speed_heatmap_2025"
	TipVsSurcharge   Name = "tip_vs_surcharge"
	TripVolumeChange Name = "trip_volume_change"
	RainElasticity   Name = "rain_elasticity"
)

// Extension is appended to a Name to form the artifact's file name.
const Extension = ".png"

// All returns every known artifact name in report order.
func All() []Name {
	return []Name{BorderEffect, SpeedHeatmap2024, SpeedHeatmap2025, TipVsSurcharge, TripVolumeChange, RainElasticity}
}

// FileName returns the file name the artifact is stored under.
func (n Name) FileName() string { return string(n) + Extension }

// Result is the outcome of one artifact lookup. Exactly one of the two
// variants holds: Present with Data populated, or absent with Reason set.
type Result struct {
	Name    Name   `json:"name"`
	Path    string `json:"path"`
	Present bool   `json:"present"`

	// Present variant.
	Data   []byte `json:"-"`
	MIME   string `json:"mime,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	// Absent variant.
	Reason string `json:"reason,omitempty"`
}

// Store resolves artifact names against a figures directory.
type Store struct {
	Dir string
	FS  testable.FileSystem
}

// NewStore returns a Store rooted at dir using the default file system.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, FS: testable.DefaultFS}
}

// Path returns the location an artifact is expected at.
func (s *Store) Path(name Name) string {
	return filepath.Join(s.Dir, name.FileName())
}

// Lookup reads the artifact once. A missing, unreadable or undecodable file
// yields an absent Result; Lookup never fails.
func (s *Store) Lookup(name Name) Result {
	fsys := s.FS
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	path := s.Path(name)
	res := Result{Name: name, Path: path}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Reason = "not found"
		} else {
			res.Reason = fmt.Sprintf("unreadable: %v", err)
		}
		slog.Warn("figure unavailable", "artifact", name, "path", path, "reason", res.Reason)
		return res
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		res.Reason = fmt.Sprintf("not a supported image: %v", err)
		slog.Warn("figure unavailable", "artifact", name, "path", path, "reason", res.Reason)
		return res
	}

	res.Present = true
	res.Data = data
	res.MIME = http.DetectContentType(data)
	res.Width = cfg.Width
	res.Height = cfg.Height
	slog.Debug("figure loaded", "artifact", name, "format", format, "bytes", len(data))
	return res
}

// LookupAll resolves names concurrently and returns the results in input
// order. It only fails if ctx is cancelled before every lookup started.
func (s *Store) LookupAll(ctx context.Context, names []Name) ([]Result, error) {
	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}
		g.Go(func() error {
			results[i] = s.Lookup(name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
