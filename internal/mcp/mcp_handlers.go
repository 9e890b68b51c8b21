package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/landsense/chartkit/core"
	"github.com/landsense/chartkit/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) logger() *zap.Logger {
	if h.baseCfg.Logger == nil {
		return zap.NewNop()
	}
	return h.baseCfg.Logger
}

// envelopes reads and splits the envelopes argument.
func envelopes(request mcp.CallToolRequest) ([]json.RawMessage, error) {
	doc := request.GetString("envelopes", "")
	if strings.TrimSpace(doc) == "" {
		return nil, fmt.Errorf("envelopes is required")
	}
	return core.SplitDocument([]byte(doc))
}

func (h *toolHandler) handleRenderAnalysisResults(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raws, err := envelopes(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid envelopes: %v", err)), nil
	}

	cfg := h.baseCfg.Clone()
	if v := request.GetString("variable", ""); v != "" {
		cfg.Variable = v
	}
	cfg.Trend = request.GetBool("trend", cfg.Trend)

	result := core.RenderWithConfig(raws, cfg)
	h.logger().Debug("rendered via mcp",
		zap.Int("envelopes", len(raws)),
		zap.String("kind", string(result.Kind)))

	return jsonResult(result), nil
}

func (h *toolHandler) handleNormalizeEnvelopes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raws, err := envelopes(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid envelopes: %v", err)), nil
	}

	return jsonResult(core.NormalizeAll(raws)), nil
}

func (h *toolHandler) handleComputeTrend(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values, err := sparseValues(request.GetArguments()["values"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}
	if len(values) == 0 {
		return mcp.NewToolResultError("invalid values: at least one value is required"), nil
	}

	return jsonResult(core.TrendChart(values)), nil
}

// jsonResult encodes v as indented JSON text, or a tool error when it cannot.
func jsonResult(v any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

// sparseValues accepts a JSON array or a comma-separated string.
func sparseValues(arg any) ([]*float64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case string:
		return contract.ParseSparseValues(strings.Split(v, ","))
	case []any:
		args := make([]string, len(v))
		for i, item := range v {
			if item == nil {
				continue
			}
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, fmt.Errorf("invalid value at position %d: %w", i, err)
			}
			args[i] = s
		}
		return contract.ParseSparseValues(args)
	default:
		return nil, fmt.Errorf("expected an array, got %T", arg)
	}
}
