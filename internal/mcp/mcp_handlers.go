package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gamesgap/gamesgap/internal/contract"
	"github.com/gamesgap/gamesgap/internal/engine"
	"github.com/gamesgap/gamesgap/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// applyCommonOverrides copies the base config and applies the dataset,
// season and limit arguments shared by every tool.
func (h *toolHandler) applyCommonOverrides(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset", ""); p != "" {
		cfg.DatasetPath = p
	}
	if s := request.GetString("season", ""); s != "" {
		season, err := schema.ParseSeasonFilter(s)
		if err != nil {
			return nil, err
		}
		cfg.Season = season
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	return cfg, nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonOverrides(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	summaries, _, err := engine.GetSummaryResults(cfg, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	limited := engine.Limit(summaries, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(limited, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonOverrides(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	series, _, err := engine.GetTrendResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(series, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetGaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonOverrides(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if v := request.GetFloat("threshold", -1); v >= 0 {
		if v > 1 {
			return mcp.NewToolResultError("invalid parameters: threshold must be between 0.0 and 1.0"), nil
		}
		cfg.Threshold = v
	}

	entries, _, err := engine.GetGapResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gap analysis failed: %v", err)), nil
	}

	limited := engine.Limit(entries, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(limited, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMedals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonOverrides(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	rows, _, err := engine.GetMedalResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("medal analysis failed: %v", err)), nil
	}

	limited := engine.Limit(rows, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(limited, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
