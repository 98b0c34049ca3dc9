// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
)

// borderEffectSection looks for trips ending just outside the pricing zone.
type borderEffectSection struct{}

func (s *borderEffectSection) Name() string   { return "border-effect" }
func (s *borderEffectSection) Icon() string   { return "🗺️" }
func (s *borderEffectSection) Expanded() bool { return true }
func (s *borderEffectSection) Title() string {
	return "Zone Boundary Behavior (Border Effect)"
}

func (s *borderEffectSection) Figures() []artifact.Name {
	return []artifact.Name{artifact.BorderEffect}
}

func (s *borderEffectSection) Build(_ *summary.Statistics, figs Figures) []Block {
	return []Block{
		Markdown("**Objective:**  \nExamine whether riders intentionally terminate trips near congestion boundaries\nto avoid additional charges."),
		Figure(figs[artifact.BorderEffect]),
		Markdown("**Key Observations**\n" +
			"- Elevated activity near pricing boundaries\n" +
			"- Sudden spikes may indicate toll avoidance behavior\n" +
			"- Priority focus: zones exceeding 20% growth"),
	}
}
