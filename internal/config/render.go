// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/report"
	"github.com/davetashner/tollview/internal/summary"
	"github.com/davetashner/tollview/internal/testable"
)

// Page returns the page configuration with any configured overrides applied.
func (c Config) Page() report.PageConfig {
	page := report.DefaultPage()
	if c.PageTitle != "" {
		page.Title = c.PageTitle
	}
	if c.Layout != "" {
		page.Layout = report.Layout(c.Layout)
	}
	return page
}

// RenderContext builds the inputs of a render pass from resolved settings.
// fsys may be nil to use the real file system.
func (c Config) RenderContext(fsys testable.FileSystem) report.RenderContext {
	return report.RenderContext{
		Page:        c.Page(),
		SummaryPath: filepath.Join(c.DataDir, summary.FileName),
		Figures:     &artifact.Store{Dir: c.FiguresDir, FS: fsys},
		FS:          fsys,
	}
}
