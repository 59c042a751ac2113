package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clipscout/clipscout/core"
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/internal/source"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleScanClips(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("curve_dir", ""); d != "" {
		cfg.CurveDir = d
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if d := request.GetInt("lookback_days", 0); d > 0 {
		cfg.LookbackDays = d
	}

	src, err := source.NewDirSource(cfg.CurveDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load curve directory: %v", err)), nil
	}

	output, err := core.GetScanResults(ctx, cfg, src, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFindClips(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	videoID := request.GetString("video_id", "")
	if videoID == "" {
		return mcp.NewToolResultError("video_id is required"), nil
	}
	if d := request.GetString("curve_dir", ""); d != "" {
		cfg.CurveDir = d
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	src, err := source.NewDirSource(cfg.CurveDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load curve directory: %v", err)), nil
	}

	output, err := core.GetVideoResults(ctx, cfg, videoID, src, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clip finding failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
