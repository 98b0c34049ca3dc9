// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davetashner/tollview/internal/config"
	"github.com/davetashner/tollview/internal/output"
	"github.com/davetashner/tollview/internal/report"
	"github.com/davetashner/tollview/internal/summary"
)

// Render-specific flag values.
var (
	renderFormat     string
	renderOutput     string
	renderSections   string
	renderDataDir    string
	renderFiguresDir string
)

// renderCmd runs a single render pass and writes the report.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the congestion pricing review once",
	Long: `Run one render pass over the pipeline artifacts and write the report.

The summary table is required: when it is missing or malformed only the
data-unavailable message is written and the command exits with code 2.
Missing chart images are reported in place and do not affect the exit code.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: text, markdown, html, json (default: text)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file path (default: stdout)")
	renderCmd.Flags().StringVar(&renderSections, "sections", "", "comma-separated list of report sections to include")
	renderCmd.Flags().StringVar(&renderDataDir, "data-dir", "", "directory holding "+summary.FileName)
	renderCmd.Flags().StringVar(&renderFiguresDir, "figures-dir", "", "directory holding the chart images")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{
		DataDir:    renderDataDir,
		FiguresDir: renderFiguresDir,
		Format:     renderFormat,
		Sections:   splitList(renderSections),
	})
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(cfg.Format)
	if err != nil {
		return exitError(ExitInvalidArgs, "tollview: %v", err)
	}
	renderer, err := report.NewRenderer(cfg.Sections)
	if err != nil {
		return exitError(ExitInvalidArgs, "tollview: %v", err)
	}

	slog.Debug("rendering report", "data_dir", cfg.DataDir, "figures_dir", cfg.FiguresDir, "format", cfg.Format)
	doc, err := renderer.Render(cmd.Context(), cfg.RenderContext(cmdFS))
	if err != nil {
		return fmt.Errorf("tollview: render failed (%v)", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, createErr := cmdFS.Create(renderOutput)
		if createErr != nil {
			return exitError(ExitInvalidArgs, "tollview: cannot create output file %q (%v)", renderOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if err := formatter.Format(doc, w); err != nil {
		return fmt.Errorf("tollview: write report (%v)", err)
	}

	if doc.Aborted {
		// On stdout the report already carries the message.
		msg := ""
		if renderOutput != "" {
			msg = summary.DataUnavailableMessage
		}
		return &exitCodeError{code: ExitDataUnavailable, msg: msg}
	}
	if renderOutput != "" {
		slog.Info("report written", "path", renderOutput, "format", cfg.Format)
	}
	return nil
}
