// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/summary"
	"github.com/davetashner/tollview/internal/testable"
)

const fixtureCSV = `total_revenue,compliance_rate,ghost_trip_count,rain_elasticity
1234567,87.46,4200,0.1234
`

// fixture lays out a processed-data dir and a figures dir under t.TempDir().
type fixture struct {
	dataDir    string
	figuresDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	f := &fixture{
		dataDir:    filepath.Join(root, "data"),
		figuresDir: filepath.Join(root, "figures"),
	}
	require.NoError(t, os.MkdirAll(f.dataDir, 0o750))
	require.NoError(t, os.MkdirAll(f.figuresDir, 0o750))
	return f
}

func (f *fixture) writeSummary(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dataDir, summary.FileName), []byte(content), 0o600))
}

func (f *fixture) writeFigures(t *testing.T, names ...artifact.Name) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 2))))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(f.figuresDir, n.FileName()), buf.Bytes(), 0o600))
	}
}

func (f *fixture) context(fsys testable.FileSystem) RenderContext {
	return RenderContext{
		Page:        DefaultPage(),
		SummaryPath: filepath.Join(f.dataDir, summary.FileName),
		Figures:     &artifact.Store{Dir: f.figuresDir, FS: fsys},
		FS:          fsys,
	}
}
