// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
)

// driverEarningsSection asks whether surcharges crowd out tips.
type driverEarningsSection struct{}

func (s *driverEarningsSection) Name() string   { return "driver-earnings" }
func (s *driverEarningsSection) Icon() string   { return "💵" }
func (s *driverEarningsSection) Title() string  { return "Driver Earnings & Tip Behavior" }
func (s *driverEarningsSection) Expanded() bool { return false }

func (s *driverEarningsSection) Figures() []artifact.Name {
	return []artifact.Name{artifact.TipVsSurcharge, artifact.TripVolumeChange}
}

func (s *driverEarningsSection) Build(_ *summary.Statistics, figs Figures) []Block {
	return []Block{
		Markdown("**Research Question:**  \nDo congestion surcharges reduce voluntary tipping?"),
		Figure(figs[artifact.TipVsSurcharge]),
		Markdown("**Discussion Points**\n" +
			"- Is tip reduction correlated with toll increase?\n" +
			"- Does this impact driver income sustainability?"),
		Figure(figs[artifact.TripVolumeChange]),
	}
}
