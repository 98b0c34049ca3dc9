// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/davetashner/tollview/internal/summary"
)

// FormatRevenue renders a currency amount with no decimals and grouped
// thousands, e.g. 1234567 -> "$1,234,567".
func FormatRevenue(v float64) string {
	return "$" + groupInt(v)
}

// FormatCompliance renders a percentage with one decimal, e.g. 87.46 -> "87.5%".
func FormatCompliance(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders a whole-number count with grouped thousands.
func FormatCount(v float64) string {
	return groupInt(v)
}

// FormatElasticity renders a signed elasticity with three decimals.
func FormatElasticity(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// groupInt rounds half to even before grouping, matching how the pipeline's
// own reports round. The rounded value is grouped as a float so totals
// beyond the int64 range keep their digits.
func groupInt(v float64) string {
	return humanize.Commaf(math.RoundToEven(v))
}

// Snapshot builds the four headline metrics.
func Snapshot(stats *summary.Statistics) []Metric {
	return []Metric{
		{Key: summary.ColTotalRevenue, Icon: "💰", Label: "Revenue Collected", Value: FormatRevenue(stats.TotalRevenue)},
		{Key: summary.ColComplianceRate, Icon: "✅", Label: "Compliance Level", Value: FormatCompliance(stats.ComplianceRate)},
		{Key: summary.ColGhostTripCount, Icon: "👻", Label: "Ghost Trips", Value: FormatCount(stats.GhostTripCount)},
		{Key: summary.ColRainElasticity, Icon: "🌧️", Label: "Rain Sensitivity", Value: FormatElasticity(stats.RainElasticity)},
	}
}
