// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
	"github.com/davetashner/tollview/internal/testable"
)

// Layout controls how wide the page content is allowed to grow.
type Layout string

// Page layouts.
const (
	LayoutWide     Layout = "wide"
	LayoutCentered Layout = "centered"
)

// PageConfig is the page-level presentation state.
type PageConfig struct {
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Layout Layout `json:"layout"`
}

// DefaultPage returns the page configuration of the congestion review.
func DefaultPage() PageConfig {
	return PageConfig{Title: "NYC Congestion Review 2025", Icon: "🚕", Layout: LayoutWide}
}

// Footer is the caption closing every complete report.
const Footer = "📂 Source: NYC TLC Trip Records | 🗓️ Coverage: 2024–2025 | Dashboard developed for academic analysis"

// RenderContext carries everything a render pass reads. It is passed
// explicitly so a pass can run without any display session.
type RenderContext struct {
	Page        PageConfig
	SummaryPath string
	Figures     *artifact.Store
	FS          testable.FileSystem
}

// Renderer produces report Documents from a fixed list of sections.
type Renderer struct {
	sections []Section
}

// NewRenderer returns a renderer for the sections named in filter
// (all registered sections when filter is empty).
func NewRenderer(filter []string) (*Renderer, error) {
	secs, err := ResolveSections(filter)
	if err != nil {
		return nil, err
	}
	return &Renderer{sections: secs}, nil
}

// Sections returns the names of the sections this renderer emits.
func (r *Renderer) Sections() []string {
	out := make([]string, len(r.sections))
	for i, s := range r.sections {
		out[i] = s.Name()
	}
	return out
}

// Render runs one render pass. A summary table that cannot be loaded
// (summary.ErrDataUnavailable) yields an aborted Document rather than an
// error; the returned error is non-nil only when ctx is cancelled.
func (r *Renderer) Render(ctx context.Context, rc RenderContext) (*Document, error) {
	passID := uuid.NewString()
	start := time.Now()
	log := slog.With("pass", passID)

	doc := &Document{
		Page:   rc.Page,
		Header: defaultHeader(),
	}

	stats, err := summary.Load(rc.FS, rc.SummaryPath)
	if err != nil {
		log.Error("render aborted", "error", err)
		abort := Alert(LevelError, "⚠️ "+summary.DataUnavailableMessage)
		doc.Aborted = true
		doc.Abort = &abort
		return doc, nil
	}

	figs, err := r.lookupFigures(ctx, rc.Figures)
	if err != nil {
		return nil, fmt.Errorf("resolve figures: %w", err)
	}

	doc.Metrics = Snapshot(stats)
	for _, sec := range r.sections {
		body := sec.Build(stats, figs)
		doc.Sections = append(doc.Sections, SectionDoc{
			Name:     sec.Name(),
			Icon:     sec.Icon(),
			Title:    sec.Title(),
			Expanded: sec.Expanded(),
			Blocks:   body,
		})
		if missing := MissingFigures(body); len(missing) > 0 {
			log.Debug("section degraded", "section", sec.Name(), "missing", missing)
		}
	}
	doc.Footer = Footer

	log.Debug("render complete", "sections", len(doc.Sections), "duration", time.Since(start))
	return doc, nil
}

// lookupFigures resolves every artifact the selected sections embed.
func (r *Renderer) lookupFigures(ctx context.Context, store *artifact.Store) (Figures, error) {
	var names []artifact.Name
	for _, sec := range r.sections {
		names = append(names, sec.Figures()...)
	}
	if store == nil {
		store = &artifact.Store{}
	}
	results, err := store.LookupAll(ctx, names)
	if err != nil {
		return nil, err
	}
	figs := make(Figures, len(results))
	for _, res := range results {
		figs[res.Name] = res
	}
	return figs, nil
}

func defaultHeader() Header {
	return Header{
		Icon:     "🚕",
		Title:    "NYC Congestion Pricing Review (2025)",
		Subtitle: "Visual Policy Evaluation Dashboard",
		Tagline:  "An independent analytical view of traffic, revenue & behavior",
	}
}
