// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strings"

	"github.com/davetashner/tollview/internal/config"
)

// loadSettings resolves the effective configuration from the config file,
// the environment and the flags in cli, then validates it.
func loadSettings(cli config.Config) (config.Config, error) {
	var (
		fileCfg *config.Config
		err     error
	)
	if configPath != "" {
		fileCfg, err = config.LoadFile(configPath)
	} else {
		fileCfg, err = config.Load(".")
	}
	if err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "tollview: failed to load config (%v)", err)
	}

	cfg := config.Resolve(fileCfg, os.Getenv, cli)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "tollview: %v", err)
	}
	return cfg, nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
