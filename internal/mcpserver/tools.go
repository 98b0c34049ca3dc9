// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/tollview/internal/config"
	"github.com/davetashner/tollview/internal/output"
	"github.com/davetashner/tollview/internal/report"
)

// ReportInput is the input schema for the report MCP tool.
type ReportInput struct {
	DataDir    string `json:"data_dir,omitempty" jsonschema:"Directory holding summary_statistics.csv (default: data/processed)"`
	FiguresDir string `json:"figures_dir,omitempty" jsonschema:"Directory holding the chart images (default: output/figures)"`
	Format     string `json:"format,omitempty" jsonschema:"Output format: markdown or json (default: markdown)"`
	Sections   string `json:"sections,omitempty" jsonschema:"Comma-separated list of report sections to include (default: all)"`
}

// ClassifyInput is the input schema for the classify_elasticity MCP tool.
type ClassifyInput struct {
	Value float64 `json:"value" jsonschema:"Rain elasticity of demand"`
}

// ClassifyOutput is the structured result of classify_elasticity.
type ClassifyOutput struct {
	Value   float64 `json:"value"`
	Band    string  `json:"band"`
	Level   string  `json:"level"`
	Message string  `json:"message"`
}

// reportFormats are the formats the report tool accepts. Text and HTML are
// meant for terminals and browsers, not agents.
var reportFormats = []string{"markdown", "json"}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all tollview tools to the MCP server.
func registerTools(server *mcp.Server, opts Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Render the NYC congestion pricing review: system snapshot metrics, border effect, speed comparison, driver earnings and weather impact sections.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, reportHandler(opts.ConfigPath))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_elasticity",
		Description: "Classify a rain elasticity value into HIGH_POSITIVE, HIGH_NEGATIVE or NEUTRAL using the report's ±0.3 threshold.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleClassify)
}

// reportHandler returns the report tool handler. configPath selects the
// config file; empty means the working directory's.
func reportHandler(configPath string) mcp.ToolHandlerFor[ReportInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
		return handleReport(ctx, req, configPath, input)
	}
}

func handleReport(ctx context.Context, _ *mcp.CallToolRequest, configPath string, input ReportInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = "markdown"
	}
	if !contains(reportFormats, format) {
		return nil, nil, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(reportFormats, ", "))
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, err
	}

	fileCfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Resolve(fileCfg, os.Getenv, config.Config{
		DataDir:    input.DataDir,
		FiguresDir: input.FiguresDir,
		Sections:   splitAndTrim(input.Sections),
	})

	if cfg.DataDir, err = ResolveDir(cfg.DataDir, config.DefaultDataDir); err != nil {
		return nil, nil, err
	}
	if cfg.FiguresDir, err = ResolveDir(cfg.FiguresDir, config.DefaultFiguresDir); err != nil {
		return nil, nil, err
	}

	renderer, err := report.NewRenderer(cfg.Sections)
	if err != nil {
		return nil, nil, err
	}
	doc, err := renderer.Render(ctx, cfg.RenderContext(nil))
	if err != nil {
		return nil, nil, fmt.Errorf("render failed: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(doc, &buf); err != nil {
		return nil, nil, fmt.Errorf("rendering failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
		IsError: doc.Aborted,
	}, nil, nil
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input ClassifyInput) (*mcp.CallToolResult, ClassifyOutput, error) {
	alert := report.ElasticityAlert(input.Value)
	out := ClassifyOutput{
		Value:   input.Value,
		Band:    string(report.Classify(input.Value)),
		Level:   string(alert.Level),
		Message: alert.Text,
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s: %s", out.Band, out.Message)},
		},
	}, out, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
