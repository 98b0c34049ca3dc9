// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/tollview/internal/config"
)

func TestConfigShow_Defaults(t *testing.T) {
	resetFlags(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show"})
	require.NoError(t, cmd.Execute())

	var got config.Config
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, config.DefaultDataDir, got.DataDir)
	assert.Equal(t, config.DefaultFiguresDir, got.FiguresDir)
	assert.Equal(t, config.DefaultFormat, got.Format)
	assert.Equal(t, config.DefaultListen, got.Listen)
}

func TestConfigShow_TOMLFileAndEnv(t *testing.T) {
	resetFlags(t)
	cfgPath := filepath.Join(t.TempDir(), "tollview.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("figures_dir = \"charts\"\nsections = [\"weather-impact\"]\n"), 0o600))
	t.Setenv(config.EnvDataDir, "/srv/processed")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	var got config.Config
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "/srv/processed", got.DataDir)
	assert.Equal(t, "charts", got.FiguresDir)
	assert.Equal(t, []string{"weather-impact"}, got.Sections)
}

func TestConfigShow_InvalidFile(t *testing.T) {
	resetFlags(t)
	cfgPath := filepath.Join(t.TempDir(), "tollview.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: pdf\nlayout: narrow\n"), 0o600))

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show", "--config", cfgPath})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "format:")
	assert.Contains(t, ece.Error(), "layout:")
}

func TestConfigShow_MissingFile(t *testing.T) {
	resetFlags(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestConfigList(t *testing.T) {
	resetFlags(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "list"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"sections: border-effect, speed-comparison, driver-earnings, weather-impact\n"+
			"formats:  html, json, markdown, text\n",
		stdout.String())
}
