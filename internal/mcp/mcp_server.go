// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/landsense/chartkit/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the chartkit MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Chartkit Rendering Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: render_analysis_results ---
	s.AddTool(mcp.NewTool("render_analysis_results",
		mcp.WithDescription("Normalize Baseline, Temporal or Spatial analysis envelopes and build chart-ready datasets or tables."),
		mcp.WithString("envelopes", mcp.Description("JSON document holding one envelope object or an array of envelopes."), mcp.Required()),
		mcp.WithString("variable", mcp.Description("Property to chart when an envelope names no variable.")),
		mcp.WithBoolean("trend", mcp.Description("Add trend overlays to temporal charts. Defaults to the server setting.")),
	), h.handleRenderAnalysisResults)

	// --- 2. Tool: normalize_envelopes ---
	s.AddTool(mcp.NewTool("normalize_envelopes",
		mcp.WithDescription("Convert wrapped or unwrapped analysis envelopes into their canonical form."),
		mcp.WithString("envelopes", mcp.Description("JSON document holding one envelope object or an array of envelopes."), mcp.Required()),
	), h.handleNormalizeEnvelopes)

	// --- 3. Tool: compute_trend ---
	s.AddTool(mcp.NewTool("compute_trend",
		mcp.WithDescription("Fit a least-squares trend line through a series. Null entries are gaps."),
		mcp.WithArray("values", mcp.Description("Series values in axis order; null marks a gap. A comma-separated string is also accepted."), mcp.Required()),
	), h.handleComputeTrend)

	return s
}

// StartMCPServer starts the chartkit MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
