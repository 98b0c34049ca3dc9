// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/tollview/internal/config"
	"github.com/davetashner/tollview/internal/output"
	"github.com/davetashner/tollview/internal/report"
)

// configCmd is the parent command for configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect tollview configuration",
}

// configShowCmd prints the resolved configuration as YAML.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration a render would use, after applying the config file,
the TOLLVIEW_DATA_DIR and TOLLVIEW_FIGURES_DIR environment variables and the
built-in defaults. The output is valid .tollview.yaml content.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadSettings(config.Config{})
		if err != nil {
			return err
		}
		return config.Write(cmd.OutOrStdout(), &cfg)
	},
}

// configListCmd lists the values accepted by the enumerated settings.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sections and formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sections: %s\n", strings.Join(report.List(), ", "))
		fmt.Fprintf(out, "formats:  %s\n", strings.Join(output.Names(), ", "))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configListCmd)
}
