// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Gamesgap MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Gamesgap Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_participation_summary ---
	s.AddTool(mcp.NewTool("get_participation_summary",
		mcp.WithDescription("Summarize Olympic participation by sport and Games edition, including female participation ratios."),
		mcp.WithString("dataset", mcp.Description("Path to the athlete events CSV file (defaults to the configured dataset).")),
		mcp.WithString("season", mcp.Description("Games edition filter (summer, winter, all). Defaults to 'all'."), mcp.Enum("summer", "winter", "all")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetSummary)

	// --- 2. Tool: get_participation_trend ---
	s.AddTool(mcp.NewTool("get_participation_trend",
		mcp.WithDescription("Compute the female participation ratio per Games edition over time."),
		mcp.WithString("dataset", mcp.Description("Path to the athlete events CSV file.")),
		mcp.WithString("season", mcp.Description("Games edition filter (summer, winter, all)."), mcp.Enum("summer", "winter", "all")),
	), h.handleGetTrend)

	// --- 3. Tool: get_participation_gaps ---
	s.AddTool(mcp.NewTool("get_participation_gaps",
		mcp.WithDescription("Find sport-games groups whose female participation ratio falls below a threshold."),
		mcp.WithNumber("threshold", mcp.Description("Female ratio threshold between 0.0 and 1.0. Defaults to 0.45.")),
		mcp.WithString("dataset", mcp.Description("Path to the athlete events CSV file.")),
		mcp.WithString("season", mcp.Description("Games edition filter (summer, winter, all)."), mcp.Enum("summer", "winter", "all")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetGaps)

	// --- 4. Tool: get_medal_table ---
	s.AddTool(mcp.NewTool("get_medal_table",
		mcp.WithDescription("Build the per-region medal table ordered by golds, silvers and bronzes."),
		mcp.WithString("dataset", mcp.Description("Path to the athlete events CSV file.")),
		mcp.WithString("season", mcp.Description("Games edition filter (summer, winter, all)."), mcp.Enum("summer", "winter", "all")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetMedals)

	return s
}

// StartMCPServer starts the Gamesgap MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
