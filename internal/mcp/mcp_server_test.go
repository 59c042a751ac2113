package mcp_test

import (
	"context"
	"testing"

	"github.com/clipscout/clipscout/internal/contract"
	mcp_internal "github.com/clipscout/clipscout/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		CurveDir: ".",
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("find_clips missing video_id", func(t *testing.T) {
		tool := s.GetTool("find_clips")
		require.NotNil(t, tool, "Tool find_clips should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "find_clips",
				Arguments: map[string]any{
					"video_id": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "video_id is required")
	})

	t.Run("scan_clips unreadable curve_dir", func(t *testing.T) {
		tool := s.GetTool("scan_clips")
		require.NotNil(t, tool, "Tool scan_clips should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "scan_clips",
				Arguments: map[string]any{
					"curve_dir": "/nonexistent/curve/exports",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "failed to load curve directory")
	})

	t.Run("find_clips unknown video", func(t *testing.T) {
		tool := s.GetTool("find_clips")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "find_clips",
				Arguments: map[string]any{
					"video_id":  "ghost",
					"curve_dir": t.TempDir(), // Empty directory, no exports
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "clip finding failed")
	})
}
