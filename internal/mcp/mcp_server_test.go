package mcp_test

import (
	"context"
	"testing"

	"github.com/gamesgap/gamesgap/internal/contract"
	mcp_internal "github.com/gamesgap/gamesgap/internal/mcp"
	"github.com/gamesgap/gamesgap/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		DatasetPath: "athlete_events.csv",
		RegionsPath: "noc_regions.csv",
		Season:      schema.AllSeasons,
		Threshold:   contract.DefaultThreshold,
		ResultLimit: contract.DefaultResultLimit,
	}

	s := mcp_internal.NewMCPServer(baseCfg)

	ctx := context.Background()

	t.Run("get_participation_summary invalid season", func(t *testing.T) {
		tool := s.GetTool("get_participation_summary")
		require.NotNil(t, tool, "Tool get_participation_summary should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_participation_summary",
				Arguments: map[string]any{
					"season": "spring", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid parameters")
	})

	t.Run("get_participation_gaps invalid threshold", func(t *testing.T) {
		tool := s.GetTool("get_participation_gaps")
		require.NotNil(t, tool, "Tool get_participation_gaps should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_participation_gaps",
				Arguments: map[string]any{
					"threshold": 1.5, // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "threshold must be between 0.0 and 1.0")
	})

	t.Run("get_medal_table missing dataset", func(t *testing.T) {
		tool := s.GetTool("get_medal_table")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_medal_table",
				Arguments: map[string]any{
					"dataset": "does_not_exist.csv", // Unreadable
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "failed")
	})
}
