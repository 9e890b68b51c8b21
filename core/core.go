// Package core normalizes analysis envelopes and builds chart-ready datasets.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/internal/outwriter"
	"github.com/landsense/chartkit/schema"
)

// OptionsFromConfig maps a validated config onto render options.
func OptionsFromConfig(cfg *contract.Config) []Option {
	return []Option{
		WithLogger(cfg.Logger),
		WithTrend(cfg.Trend),
		WithDefaultVariable(cfg.Variable),
	}
}

// RenderWithConfig renders raw payloads using a validated config.
func RenderWithConfig(raws []json.RawMessage, cfg *contract.Config) schema.RenderResult {
	return Render(raws, OptionsFromConfig(cfg)...)
}

// ExecuteRender loads envelopes from the configured inputs, renders them and
// prints the result. It serves as the main entry point for the 'render' command.
func ExecuteRender(ctx context.Context, cfg *contract.Config, src contract.EnvelopeSource) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.LogRenderHeader(cfg)
	}

	raws, err := src.Load(ctx, cfg.Inputs)
	if err != nil {
		return fmt.Errorf("failed to load envelopes: %w", err)
	}

	result := RenderWithConfig(raws, cfg)
	duration := time.Since(start)
	return outwriter.PrintRenderResult(result, cfg, duration)
}

// ExecuteTrend fits a trend line through values and prints both.
// It serves as the main entry point for the 'trend' command.
func ExecuteTrend(_ context.Context, cfg *contract.Config, values []*float64) error {
	if len(values) == 0 {
		return fmt.Errorf("at least one value is required")
	}
	return outwriter.PrintTrendResult(TrendChart(values), cfg)
}
