// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DefaultLevel(t *testing.T) {
	Setup(Options{})

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should be enabled in default mode")
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn), "WARN should be enabled in default mode")
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug), "DEBUG should not be enabled in default mode")
}

func TestSetup_VerboseLevel(t *testing.T) {
	Setup(Options{Verbose: true})

	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug), "DEBUG should be enabled in verbose mode")
}

func TestSetup_QuietLevel(t *testing.T) {
	Setup(Options{Quiet: true})

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should not be enabled in quiet mode")
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn), "WARN should be enabled in quiet mode")
}

func TestSetup_QuietTakesPrecedence(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Options{Verbose: true, Quiet: true}.Level())
}

func TestSetup_TextWriter(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Writer: &buf})

	slog.Info("figure unavailable", "artifact", "border_effect")
	assert.Contains(t, buf.String(), "msg=\"figure unavailable\"")
	assert.Contains(t, buf.String(), "artifact=border_effect")
}

func TestSetup_JSONWriter(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Writer: &buf, JSON: true})

	slog.Warn("render aborted", "pass", "abc")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "render aborted", rec["msg"])
	assert.Equal(t, "abc", rec["pass"])
}
