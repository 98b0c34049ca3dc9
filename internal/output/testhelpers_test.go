// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/report"
)

// disableColor turns off ANSI output for the duration of a test.
func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func presentFigure(t *testing.T, name artifact.Name) artifact.Result {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 2))))
	return artifact.Result{
		Name:    name,
		Path:    "/figures/" + name.FileName(),
		Present: true,
		Data:    buf.Bytes(),
		MIME:    "image/png",
		Width:   3,
		Height:  2,
	}
}

func absentFigure(name artifact.Name) artifact.Result {
	return artifact.Result{Name: name, Path: "/figures/" + name.FileName(), Reason: "not found"}
}

// sampleDoc returns a complete document with one missing figure in the
// border section and one missing heatmap.
func sampleDoc(t *testing.T) *report.Document {
	t.Helper()
	return &report.Document{
		Page: report.DefaultPage(),
		Header: report.Header{
			Icon:     "🚕",
			Title:    "NYC Congestion Pricing Review (2025)",
			Subtitle: "Visual Policy Evaluation Dashboard",
			Tagline:  "An independent analytical view of traffic, revenue & behavior",
		},
		Metrics: []report.Metric{
			{Key: "total_revenue", Icon: "💰", Label: "Revenue Collected", Value: "$1,234,567"},
			{Key: "compliance_rate", Icon: "✅", Label: "Compliance Level", Value: "87.5%"},
			{Key: "ghost_trip_count", Icon: "👻", Label: "Ghost Trips", Value: "4,200"},
			{Key: "rain_elasticity", Icon: "🌧️", Label: "Rain Sensitivity", Value: "0.123"},
		},
		Sections: []report.SectionDoc{
			{
				Name: "border-effect", Icon: "🗺️", Title: "Zone Boundary Behavior (Border Effect)", Expanded: true,
				Blocks: []report.Block{
					report.Markdown("**Objective:**  \nExamine trips."),
					report.Figure(absentFigure(artifact.BorderEffect)),
					report.Markdown("**Key Observations**\n- Elevated activity near pricing boundaries"),
				},
			},
			{
				Name: "speed-comparison", Icon: "🚦", Title: "Traffic Speed Comparison (Before vs After)",
				Blocks: []report.Block{
					report.Columns(
						report.Column{Heading: "Pre-Pricing (Q1 2024)", Blocks: []report.Block{report.Figure(absentFigure(artifact.SpeedHeatmap2024))}},
						report.Column{Heading: "Post-Pricing (Q1 2025)", Blocks: []report.Block{report.Figure(presentFigure(t, artifact.SpeedHeatmap2025))}},
					),
				},
			},
			{
				Name: "driver-earnings", Icon: "💵", Title: "Driver Earnings & Tip Behavior",
				Blocks: []report.Block{report.Figure(presentFigure(t, artifact.TipVsSurcharge))},
			},
			{
				Name: "weather-impact", Icon: "🌦️", Title: "Weather Impact on Demand",
				Blocks: []report.Block{
					report.Figure(presentFigure(t, artifact.RainElasticity)),
					report.ElasticityAlert(0.31),
				},
			},
		},
		Footer: report.Footer,
	}
}

func abortedDoc() *report.Document {
	abort := report.Alert(report.LevelError, "⚠️ Required data not found. Please execute the pipeline first.")
	return &report.Document{
		Page:    report.DefaultPage(),
		Header:  report.Header{Title: "NYC Congestion Pricing Review (2025)"},
		Aborted: true,
		Abort:   &abort,
	}
}
