package core

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T, output schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		Inputs:     []string{"a.json", "b.json"},
		Workers:    1,
		Precision:  contract.DefaultPrecision,
		Output:     output,
		OutputFile: filepath.Join(t.TempDir(), "out."+string(output)),
		Trend:      true,
		Logger:     zap.NewNop(),
	}
}

// TestExecuteRender tests the main render entry point end to end.
func TestExecuteRender(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig(t, schema.JSONOut)

	src := &contract.MockEnvelopeSource{}
	src.On("Load", mock.Anything, cfg.Inputs).Return(raws(
		`{"analysis_results": {"data": {"analysisType": "Spatial", "variable": "NDVI"},
		  "results": [{"features": [{"properties": {"Name": "Camp1", "mean": 12}}]}]}}`,
	), nil)

	require.NoError(t, ExecuteRender(ctx, cfg, src))
	src.AssertExpectations(t)

	body, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var got schema.RenderResult
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, schema.SpatialResult, got.Kind)
	require.Len(t, got.Charts, 1)
	assert.Equal(t, []string{"Camp1"}, got.Charts[0].Dataset.Labels)
}

// TestExecuteRenderLoadError tests that loader failures are surfaced.
func TestExecuteRenderLoadError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig(t, schema.JSONOut)

	src := &contract.MockEnvelopeSource{}
	src.On("Load", mock.Anything, cfg.Inputs).Return(nil, errors.New("disk on fire"))

	err := ExecuteRender(ctx, cfg, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.NoFileExists(t, cfg.OutputFile)
}

// TestExecuteRenderSentinel tests that an empty batch still renders a message.
func TestExecuteRenderSentinel(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig(t, schema.JSONOut)

	src := &contract.MockEnvelopeSource{}
	src.On("Load", mock.Anything, cfg.Inputs).Return([]json.RawMessage{}, nil)

	require.NoError(t, ExecuteRender(ctx, cfg, src))
	body, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(body), schema.NoResultsMessage)
}

// TestExecuteTrend tests the trend entry point with CSV output.
func TestExecuteTrend(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)

	require.NoError(t, ExecuteTrend(context.Background(), cfg, []*float64{schema.Float(1), nil, schema.Float(5), schema.Float(7)}))

	f, err := os.Open(cfg.OutputFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"index", "value", "trend"}, records[0])
	assert.Equal(t, []string{"1", "", "3.00"}, records[2])
}

func TestExecuteTrendRequiresValues(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)
	assert.Error(t, ExecuteTrend(context.Background(), cfg, nil))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &contract.Config{Trend: false, Variable: "EVI"}
	rc := applyOptions(OptionsFromConfig(cfg))
	assert.False(t, rc.trend)
	assert.Equal(t, "EVI", rc.defaultVariable)
	assert.NotNil(t, rc.logger, "a nil config logger keeps the no-op default")
}
