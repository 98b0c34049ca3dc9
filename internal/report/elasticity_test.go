// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		v    float64
		want Band
	}{
		{0.31, BandHighPositive},
		{5, BandHighPositive},
		{math.Nextafter(0.3, 1), BandHighPositive},
		{-0.31, BandHighNegative},
		{-5, BandHighNegative},
		{math.Nextafter(-0.3, -1), BandHighNegative},
		{0.3, BandNeutral},
		{-0.3, BandNeutral},
		{0, BandNeutral},
		{0.1234, BandNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.v), "Classify(%v)", tt.v)
	}
}

func TestElasticityAlert(t *testing.T) {
	tests := []struct {
		name      string
		v         float64
		wantLevel AlertLevel
		wantText  string
	}{
		{"high positive", 0.31, LevelSuccess, "High sensitivity detected (0.310) → Rain boosts demand"},
		{"high negative", -0.31, LevelError, "Negative elasticity (-0.310) → Reduced demand"},
		{"upper boundary", 0.3, LevelInfo, "Low elasticity (0.300) → Minimal weather influence"},
		{"lower boundary", -0.3, LevelInfo, "Low elasticity (-0.300) → Minimal weather influence"},
		{"zero", 0, LevelInfo, "Low elasticity (0.000) → Minimal weather influence"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ElasticityAlert(tt.v)
			assert.Equal(t, BlockAlert, b.Kind)
			assert.Equal(t, tt.wantLevel, b.Level)
			assert.Equal(t, tt.wantText, b.Text)
			assert.Nil(t, b.Figure)
		})
	}
}
