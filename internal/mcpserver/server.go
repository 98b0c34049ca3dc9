// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the congestion review report as tools over stdio transport.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Options configures the tools of a server.
type Options struct {
	// ConfigPath is the config file the report tool reads. Empty means
	// .tollview.yaml or .tollview.toml in the working directory.
	ConfigPath string
}

// New creates a new MCP server with tollview's tools registered.
func New(version string, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tollview",
		Title:   "Tollview: NYC Congestion Pricing Review",
		Version: version,
	}, nil)

	registerTools(server, opts)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, opts Options, transport mcp.Transport) error {
	server := New(version, opts)
	return server.Run(ctx, transport)
}
