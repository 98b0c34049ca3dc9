// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for tollview using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Options selects the log level and encoding.
type Options struct {
	Verbose bool
	Quiet   bool

	// JSON switches to slog.JSONHandler, used by the long-running server.
	JSON bool

	// Writer defaults to os.Stderr. The report itself goes to stdout, so
	// logs never mix into it.
	Writer io.Writer
}

// Level maps the verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Quiet wins when both are set.
func (o Options) Level() slog.Level {
	switch {
	case o.Quiet:
		return slog.LevelWarn
	case o.Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger for the given options.
func Setup(o Options) {
	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: o.Level()}

	var handler slog.Handler
	if o.JSON {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}
	slog.SetDefault(slog.New(handler))
}
