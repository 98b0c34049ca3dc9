// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davetashner/tollview/internal/report"
)

func TestPage_Defaults(t *testing.T) {
	assert.Equal(t, report.DefaultPage(), Config{}.Page())
}

func TestPage_Overrides(t *testing.T) {
	page := Config{PageTitle: "Review", Layout: "centered"}.Page()
	assert.Equal(t, "Review", page.Title)
	assert.Equal(t, report.LayoutCentered, page.Layout)
	assert.Equal(t, "🚕", page.Icon)
}

func TestRenderContext_Paths(t *testing.T) {
	cfg := Config{DataDir: filepath.Join("d", "p"), FiguresDir: "figs"}
	rc := cfg.RenderContext(nil)
	assert.Equal(t, filepath.Join("d", "p", "summary_statistics.csv"), rc.SummaryPath)
	assert.Equal(t, "figs", rc.Figures.Dir)
	assert.Nil(t, rc.FS)
}
