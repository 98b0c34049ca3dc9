// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package config

// Resolve combines the sources of configuration into final settings.
// Precedence, highest first: cli, environment (directories only), file,
// defaults. getenv may be nil.
func Resolve(file *Config, getenv func(string) string, cli Config) Config {
	if file == nil {
		file = &Config{}
	}
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	return Config{
		DataDir:    first(cli.DataDir, getenv(EnvDataDir), file.DataDir, DefaultDataDir),
		FiguresDir: first(cli.FiguresDir, getenv(EnvFiguresDir), file.FiguresDir, DefaultFiguresDir),
		Format:     first(cli.Format, file.Format, DefaultFormat),
		Sections:   firstSlice(cli.Sections, file.Sections),
		Listen:     first(cli.Listen, file.Listen, DefaultListen),
		PageTitle:  first(cli.PageTitle, file.PageTitle),
		Layout:     first(cli.Layout, file.Layout, DefaultLayout),
	}
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstSlice(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
