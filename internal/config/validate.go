// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/davetashner/tollview/internal/output"
	"github.com/davetashner/tollview/internal/report"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Format != "" {
		if _, err := output.GetFormatter(cfg.Format); err != nil {
			errs = append(errs, fmt.Sprintf("format: %v", err))
		}
	}

	if len(cfg.Sections) > 0 {
		if _, err := report.ResolveSections(cfg.Sections); err != nil {
			errs = append(errs, fmt.Sprintf("sections: %v", err))
		}
	}

	switch report.Layout(cfg.Layout) {
	case "", report.LayoutWide, report.LayoutCentered:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("layout: invalid value %q (must be wide or centered)", cfg.Layout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
