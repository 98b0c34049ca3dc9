// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/report"
)

func TestMarkdownFormatter_Complete(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(sampleDoc(t), &buf))
	out := buf.String()

	assert.Contains(t, out, "# 🚕 NYC Congestion Pricing Review (2025)\n")
	assert.Contains(t, out, "### Visual Policy Evaluation Dashboard\n")
	assert.Contains(t, out, "| 💰 Revenue Collected | $1,234,567 |\n")
	assert.Contains(t, out, "## 🗺️ Zone Boundary Behavior (Border Effect)\n")
	assert.Contains(t, out, "> **Warning:** Figure unavailable. (`border_effect.png`)\n")
	assert.Contains(t, out, "#### Post-Pricing (Q1 2025)\n\n![speed_heatmap_2025](/figures/speed_heatmap_2025.png)\n")
	assert.Contains(t, out, "> **Success:** High sensitivity detected (0.310) → Rain boosts demand\n")
	assert.Contains(t, out, "- Elevated activity near pricing boundaries")
	assert.Contains(t, out, "<sub>"+"📂 Source: NYC TLC Trip Records")
}

func TestMarkdownFormatter_Aborted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(abortedDoc(), &buf))
	out := buf.String()

	assert.Contains(t, out, "> **Error:** ⚠️ Required data not found.")
	assert.NotContains(t, out, "System Snapshot")
	assert.NotContains(t, out, "| Metric |")
}

func TestAlertTitle(t *testing.T) {
	assert.Equal(t, "Info", alertTitle("info"))
	assert.Equal(t, "", alertTitle(""))
}

func TestMarkdownFormatter_FigurePathWithSpaces(t *testing.T) {
	doc := sampleDoc(t)
	fig := presentFigure(t, artifact.BorderEffect)
	fig.Path = "/srv/congestion review (v2)/figures/border_effect.png"
	doc.Sections[0].Blocks = []report.Block{report.Figure(fig)}

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(doc, &buf))
	assert.Contains(t, buf.String(), "![border_effect](</srv/congestion review (v2)/figures/border_effect.png>)\n")
}

func TestLinkDestination(t *testing.T) {
	assert.Equal(t, "/figures/a.png", linkDestination("/figures/a.png"))
	assert.Equal(t, "<a b.png>", linkDestination("a b.png"))
	assert.Equal(t, "<figs/a).png>", linkDestination("figs/a).png"))
	assert.Equal(t, `<x\<y\>.png>`, linkDestination("x<y>.png"))
	assert.Equal(t, `<C:\\my figs\\a.png>`, linkDestination(`C:\my figs\a.png`))
}
