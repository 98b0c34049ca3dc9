// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

// Sections register from one place so the report order does not depend on
// file names.
func init() {
	registerDefaults()
}

func registerDefaults() {
	Register(&borderEffectSection{})
	Register(&speedComparisonSection{})
	Register(&driverEarningsSection{})
	Register(&weatherImpactSection{})
}
