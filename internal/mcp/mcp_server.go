// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Clipscout MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Clipscout Clip Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: scan_clips ---
	s.AddTool(mcp.NewTool("scan_clips",
		mcp.WithDescription("Scan a directory of video retention exports for short-form clip candidates."),
		mcp.WithString("curve_dir", mcp.Description("Directory of per-video analytics exports (defaults to the configured directory).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of clip candidates returned.")),
		mcp.WithNumber("lookback_days", mcp.Description("Only scan videos published within this many days (plus the all-time top performers).")),
	), h.handleScanClips)

	// --- 2. Tool: find_clips ---
	s.AddTool(mcp.NewTool("find_clips",
		mcp.WithDescription("Find short-form clip candidates in a single video's retention curve."),
		mcp.WithString("video_id", mcp.Description("The video to analyze."), mcp.Required()),
		mcp.WithString("curve_dir", mcp.Description("Directory of per-video analytics exports.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of clip candidates returned.")),
	), h.handleFindClips)

	return s
}

// StartMCPServer starts the Clipscout MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
