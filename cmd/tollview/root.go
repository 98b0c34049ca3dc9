// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	tollviewlog "github.com/davetashner/tollview/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
	logFormat  string
)

// rootCmd is the base command for tollview.
var rootCmd = &cobra.Command{
	Use:   "tollview",
	Short: "Render the NYC congestion pricing review",
	Long: `Tollview renders the NYC Congestion Pricing Review (2025) from the summary
table and chart images produced by the analysis pipeline. The report can be
written to the terminal, as Markdown, HTML or JSON, served over HTTP, or
exposed to agents as MCP tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		switch logFormat {
		case "text", "json":
		default:
			return exitError(ExitInvalidArgs, "tollview: invalid --log-format %q (must be text or json)", logFormat)
		}
		tollviewlog.Setup(tollviewlog.Options{
			Verbose: verbose,
			Quiet:   quiet,
			JSON:    logFormat == "json",
		})
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: .tollview.yaml or .tollview.toml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log encoding on stderr: text or json")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
