// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

// Package summary loads the one-row summary statistics table produced by the
// upstream congestion pricing pipeline.
package summary

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/davetashner/tollview/internal/testable"
)

// FileName is the summary table's file name inside the processed-data directory.
const FileName = "summary_statistics.csv"

// DataUnavailableMessage is the single instruction shown when the summary
// table cannot be used.
const DataUnavailableMessage = "Required data not found. Please execute the pipeline first."

// ErrDataUnavailable indicates the summary table is missing, empty or
// malformed. Every Load failure wraps it.
var ErrDataUnavailable = errors.New("summary data unavailable")

// Required column names.
const (
	ColTotalRevenue   = "total_revenue"
	ColComplianceRate = "compliance_rate"
	ColGhostTripCount = "ghost_trip_count"
	ColRainElasticity = "rain_elasticity"
)

// Columns lists the required columns in snapshot order.
var Columns = []string{ColTotalRevenue, ColComplianceRate, ColGhostTripCount, ColRainElasticity}

// Statistics is the single row of aggregate metrics the report consumes.
type Statistics struct {
	TotalRevenue   float64 `json:"total_revenue"`
	ComplianceRate float64 `json:"compliance_rate"`
	GhostTripCount float64 `json:"ghost_trip_count"`
	RainElasticity float64 `json:"rain_elasticity"`
}

// Load reads the summary table at path and returns its first data row.
func Load(fsys testable.FileSystem, path string) (*Statistics, error) {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, ErrDataUnavailable)
	}
	stats, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}

// Parse decodes a summary table from r. Columns are located by header name;
// extra columns are ignored and only the first data row is read.
func Parse(r io.Reader) (*Statistics, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty table: %w", ErrDataUnavailable)
		}
		return nil, fmt.Errorf("read header: %v: %w", err, ErrDataUnavailable)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	// pandas writes an unnamed index column first; it is ignored like any
	// other extra column.
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", col, ErrDataUnavailable)
		}
	}

	row, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no data rows: %w", ErrDataUnavailable)
		}
		return nil, fmt.Errorf("read row: %v: %w", err, ErrDataUnavailable)
	}

	values := make(map[string]float64, len(Columns))
	for _, col := range Columns {
		i := index[col]
		if i >= len(row) {
			return nil, fmt.Errorf("column %q: value missing: %w", col, ErrDataUnavailable)
		}
		v, err := parseNumber(row[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %v: %w", col, err, ErrDataUnavailable)
		}
		values[col] = v
	}

	stats := &Statistics{
		TotalRevenue:   values[ColTotalRevenue],
		ComplianceRate: values[ColComplianceRate],
		GhostTripCount: values[ColGhostTripCount],
		RainElasticity: values[ColRainElasticity],
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Validate checks the documented value ranges and returns the first
// violation wrapped in ErrDataUnavailable.
func (s *Statistics) Validate() error {
	switch {
	case s.TotalRevenue < 0:
		return fmt.Errorf("%s: must be non-negative, got %g: %w", ColTotalRevenue, s.TotalRevenue, ErrDataUnavailable)
	case s.ComplianceRate < 0 || s.ComplianceRate > 100:
		return fmt.Errorf("%s: must be between 0 and 100, got %g: %w", ColComplianceRate, s.ComplianceRate, ErrDataUnavailable)
	case s.GhostTripCount < 0:
		return fmt.Errorf("%s: must be non-negative, got %g: %w", ColGhostTripCount, s.GhostTripCount, ErrDataUnavailable)
	case s.GhostTripCount != math.Trunc(s.GhostTripCount):
		return fmt.Errorf("%s: must be a whole number, got %g: %w", ColGhostTripCount, s.GhostTripCount, ErrDataUnavailable)
	}
	return nil
}

func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return v, nil
}
