// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
)

// speedComparisonSection puts the pre- and post-pricing speed heatmaps side
// by side. Each heatmap degrades independently.
type speedComparisonSection struct{}

func (s *speedComparisonSection) Name() string   { return "speed-comparison" }
func (s *speedComparisonSection) Icon() string   { return "🚦" }
func (s *speedComparisonSection) Expanded() bool { return false }
func (s *speedComparisonSection) Title() string {
	return "Traffic Speed Comparison (Before vs After)"
}

func (s *speedComparisonSection) Figures() []artifact.Name {
	return []artifact.Name{artifact.SpeedHeatmap2024, artifact.SpeedHeatmap2025}
}

func (s *speedComparisonSection) Build(_ *summary.Statistics, figs Figures) []Block {
	return []Block{
		Markdown("**Did congestion pricing improve vehicle movement?**"),
		Columns(
			Column{Heading: "⏱️ Pre-Pricing (Q1 2024)", Blocks: []Block{Figure(figs[artifact.SpeedHeatmap2024])}},
			Column{Heading: "⚡ Post-Pricing (Q1 2025)", Blocks: []Block{Figure(figs[artifact.SpeedHeatmap2025])}},
		),
		Alert(LevelInfo, "Darker shades indicate improved average travel speeds during peak hours."),
	}
}
