// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
)

// weatherImpactSection shows the rain elasticity chart and classifies the
// headline elasticity into one narrative band.
type weatherImpactSection struct{}

func (s *weatherImpactSection) Name() string   { return "weather-impact" }
func (s *weatherImpactSection) Icon() string   { return "🌦️" }
func (s *weatherImpactSection) Title() string  { return "Weather Impact on Demand" }
func (s *weatherImpactSection) Expanded() bool { return false }

func (s *weatherImpactSection) Figures() []artifact.Name {
	return []artifact.Name{artifact.RainElasticity}
}

func (s *weatherImpactSection) Build(stats *summary.Statistics, figs Figures) []Block {
	return []Block{
		Markdown("**Assessing demand response under rainfall conditions**"),
		Figure(figs[artifact.RainElasticity]),
		ElasticityAlert(stats.RainElasticity),
	}
}
