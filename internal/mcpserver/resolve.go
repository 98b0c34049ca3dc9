// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDir turns a tool-supplied directory into an absolute path, using
// fallback when dir is empty. A directory that does not exist is accepted;
// the render pass reports the missing data itself. An existing path that is
// not a directory is rejected.
func ResolveDir(dir, fallback string) (string, error) {
	if dir == "" {
		dir = fallback
	}
	if strings.ContainsRune(dir, 0) {
		return "", fmt.Errorf("invalid path %q", dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	if err != nil {
		return abs, nil //nolint:nilerr // missing data surfaces as an aborted report
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}
	return abs, nil
}
