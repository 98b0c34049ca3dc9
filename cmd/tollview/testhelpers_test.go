// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/config"
	"github.com/davetashner/tollview/internal/testable"
)

const fixtureCSV = "total_revenue,compliance_rate,ghost_trip_count,rain_elasticity\n" +
	"2500000,91.2,1800,-0.42\n"

// newTestCmd redirects the global rootCmd's I/O to buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag and package-level flag variable to its
// default and isolates the test from the environment and the real file
// system.
func resetFlags(t *testing.T) {
	t.Helper()

	for _, cmd := range []*cobra.Command{renderCmd, serveCmd, configShowCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})

	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvFiguresDir, "")

	prevNoColor := color.NoColor
	color.NoColor = true
	oldFS := cmdFS
	t.Cleanup(func() {
		color.NoColor = prevNoColor
		cmdFS = oldFS
	})
}

// writeFixture creates pipeline outputs: the summary table and the given
// figures. It returns the data and figures directories.
func writeFixture(t *testing.T, csv string, figures ...artifact.Name) (dataDir, figuresDir string) {
	t.Helper()
	root := t.TempDir()
	dataDir = filepath.Join(root, "processed")
	figuresDir = filepath.Join(root, "figures")
	require.NoError(t, os.MkdirAll(dataDir, 0o750))
	require.NoError(t, os.MkdirAll(figuresDir, 0o750))

	if csv != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, "summary_statistics.csv"), []byte(csv), 0o600))
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 2))))
	for _, name := range figures {
		require.NoError(t, os.WriteFile(filepath.Join(figuresDir, name.FileName()), buf.Bytes(), 0o600))
	}
	return dataDir, figuresDir
}

// useMockFS swaps cmdFS for a mock for the rest of the test.
func useMockFS(t *testing.T, m *testable.MockFileSystem) {
	t.Helper()
	cmdFS = m
}
