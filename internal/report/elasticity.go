// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import "fmt"

// Band classifies how strongly rainfall moves taxi demand.
type Band string

// Elasticity bands. They are exhaustive and mutually exclusive.
const (
	BandHighPositive Band = "HIGH_POSITIVE"
	BandHighNegative Band = "HIGH_NEGATIVE"
	BandNeutral      Band = "NEUTRAL"
)

// ElasticityThreshold bounds the neutral band; ±ElasticityThreshold is neutral.
const ElasticityThreshold = 0.3

// Classify returns the band for an elasticity value.
func Classify(v float64) Band {
	switch {
	case v > ElasticityThreshold:
		return BandHighPositive
	case v < -ElasticityThreshold:
		return BandHighNegative
	default:
		return BandNeutral
	}
}

// ElasticityAlert returns the single narrative alert for v.
func ElasticityAlert(v float64) Block {
	s := FormatElasticity(v)
	switch Classify(v) {
	case BandHighPositive:
		return Alert(LevelSuccess, fmt.Sprintf("High sensitivity detected (%s) → Rain boosts demand", s))
	case BandHighNegative:
		return Alert(LevelError, fmt.Sprintf("Negative elasticity (%s) → Reduced demand", s))
	default:
		return Alert(LevelInfo, fmt.Sprintf("Low elasticity (%s) → Minimal weather influence", s))
	}
}
