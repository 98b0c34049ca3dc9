// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

// Package config handles tollview configuration files and the environment
// overrides for the input directories.
package config

// Config is the contents of a .tollview.yaml or .tollview.toml file, and
// also the shape of fully resolved settings.
type Config struct {
	DataDir    string   `yaml:"data_dir,omitempty" toml:"data_dir,omitempty"`
	FiguresDir string   `yaml:"figures_dir,omitempty" toml:"figures_dir,omitempty"`
	Format     string   `yaml:"format,omitempty" toml:"format,omitempty"`
	Sections   []string `yaml:"sections,omitempty" toml:"sections,omitempty"`
	Listen     string   `yaml:"listen,omitempty" toml:"listen,omitempty"`
	PageTitle  string   `yaml:"page_title,omitempty" toml:"page_title,omitempty"`
	Layout     string   `yaml:"layout,omitempty" toml:"layout,omitempty"`
}

// Config file names searched in the working directory, in order.
const (
	FileName     = ".tollview.yaml"
	TOMLFileName = ".tollview.toml"
)

// Environment variables that override the input directories.
const (
	EnvDataDir    = "TOLLVIEW_DATA_DIR"
	EnvFiguresDir = "TOLLVIEW_FIGURES_DIR"
)

// Defaults applied when nothing else sets a value.
const (
	DefaultDataDir    = "data/processed"
	DefaultFiguresDir = "output/figures"
	DefaultFormat     = "text"
	DefaultListen     = ":8501"
	DefaultLayout     = "wide"
)
