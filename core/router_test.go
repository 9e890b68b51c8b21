package core

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/landsense/chartkit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func raws(docs ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		out[i] = json.RawMessage(d)
	}
	return out
}

func TestRenderAnnualTemporal(t *testing.T) {
	result := Render(raws(`{
		"data": {"analysisType": "Temporal", "temporalResolution": "Annual", "variable": "NDVI"},
		"results": [{"features": [
			{"properties": {"Name": "A", "year": 2020, "NDVI": 0.5}},
			{"properties": {"Name": "A", "year": 2021, "NDVI": 0.6}}
		]}]
	}`))

	require.Equal(t, schema.TemporalResult, result.Kind)
	assert.False(t, result.SideBySide)
	require.Len(t, result.Charts, 1)

	chart := result.Charts[0]
	assert.Equal(t, schema.BarChart, chart.Kind)
	assert.Equal(t, "NDVI", chart.Caption)
	assert.Equal(t, []string{"2020", "2021"}, chart.Dataset.Labels)

	require.Len(t, chart.Dataset.Datasets, 2)
	data, trend := chart.Dataset.Datasets[0], chart.Dataset.Datasets[1]
	assert.Equal(t, "A (Result 1)", data.Label)
	assert.Equal(t, schema.Floats(0.5, 0.6), data.Data)
	assert.Equal(t, schema.TrendSeries, trend.Kind)
	assert.Equal(t, data.Label, trend.Parent)
	assert.InDelta(t, 0.5, *trend.Data[0], 1e-12)
	assert.InDelta(t, 0.6, *trend.Data[1], 1e-12)
}

func TestRenderEmptyBatch(t *testing.T) {
	for name, in := range map[string][]json.RawMessage{
		"nil":         nil,
		"empty":       {},
		"only nulls":  raws(`null`, `{}`),
		"only broken": raws(`[`, `"x"`),
	} {
		t.Run(name, func(t *testing.T) {
			result := Render(in)
			assert.Equal(t, schema.NoDataResult, result.Kind)
			assert.Equal(t, "No analysis results available", result.Message)
			assert.True(t, result.IsSentinel())
		})
	}
}

func TestRenderSpatialDefaultsMissingMean(t *testing.T) {
	result := Render(raws(`{
		"data": {"analysisType": "Spatial", "variable": "NDVI"},
		"results": [{"features": [
			{"properties": {"Name": "Camp1", "mean": 12}},
			{"properties": {"Name": "Camp2"}}
		]}]
	}`))

	require.Equal(t, schema.SpatialResult, result.Kind)
	require.Len(t, result.Charts, 1)
	chart := result.Charts[0]
	assert.Equal(t, schema.BarChart, chart.Kind)
	assert.Equal(t, "Variable: NDVI", chart.Caption)
	assert.Equal(t, []string{"Camp1", "Camp2"}, chart.Dataset.Labels)
	require.Len(t, chart.Dataset.Datasets, 1)
	assert.Equal(t, schema.Floats(12, 0), chart.Dataset.Datasets[0].Data)
}

func TestRenderBaselineMissingColumn(t *testing.T) {
	result := Render(raws(`{
		"data": {"analysisType": "Baseline", "landscape": "Mara"},
		"results": [{"columns": {"EVI": "Float"}, "features": [
			{"properties": {"Name": "Plot 1"}},
			{"properties": {"Name": "Plot 2", "EVI": 0.42}}
		]}]
	}`))

	require.Equal(t, schema.BaselineResult, result.Kind)
	require.Len(t, result.Tables, 1)
	table := result.Tables[0]
	assert.Equal(t, "Mara", table.Title)
	assert.Equal(t, []string{"Name", "EVI"}, table.Columns)
	assert.Equal(t, [][]string{{"Plot 1", "N/A"}, {"Plot 2", "0.42"}}, table.Rows)
}

func TestRenderTypeTagsAreCaseSensitive(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"lowercase", `"baseline"`},
		{"uppercase", `"TEMPORAL"`},
		{"missing", `null`},
		{"unknown", `"Hydrology"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(raws(`{"data": {"analysisType": ` + tt.tag + `}, "results": [{"features": [{"properties": {"Name": "A"}}]}]}`))
			assert.Equal(t, schema.UnknownTypeResult, result.Kind)
			assert.Equal(t, "Unknown analysis type", result.Message)
		})
	}
}

func TestRenderRoutesOnFirstNonEmptyEnvelope(t *testing.T) {
	result := Render(raws(
		`null`,
		`{"data": {"analysisType": "Spatial"}, "results": [{"features": [{"properties": {"Name": "X", "mean": 1}}]}]}`,
		`{"data": {"analysisType": "Baseline"}}`,
	))
	assert.Equal(t, schema.SpatialResult, result.Kind)
}

func TestRenderDedupAcrossEnvelopes(t *testing.T) {
	result := Render(raws(
		`{"data": {"analysisType": "Temporal", "temporalResolution": "Annual", "variable": "NDVI"},
		  "results": [{"features": [{"properties": {"Name": "Acacia", "year": 2020, "NDVI": 0.1}}]}]}`,
		`{"data": {"analysisType": "Temporal", "temporalResolution": "Annual", "variable": "NDVI"},
		  "results": [{"features": [
			{"properties": {"Name": "Acacia", "year": 2020, "NDVI": 0.9}},
			{"properties": {"Name": "Baobab", "year": 2020, "NDVI": 0.4}}
		  ]}]}`,
	), WithTrend(false))

	require.Len(t, result.Charts, 1)
	series := result.Charts[0].Dataset.Datasets
	require.Len(t, series, 2)
	assert.Equal(t, "Acacia (Result 1)", series[0].Label)
	assert.Equal(t, schema.Floats(0.1), series[0].Data)
	assert.Equal(t, "Baobab (Result 1)", series[1].Label)
}

func TestRenderSeriesAlignWithAxis(t *testing.T) {
	result := Render(raws(
		`{"data": {"analysisType": "Temporal", "temporalResolution": "Monthly", "variable": "EVI"},
		  "results": [
			{"features": [
				{"properties": {"Name": "A", "year": 2020, "month": 1, "EVI": 1}},
				{"properties": {"Name": "A", "year": 2020, "month": 2, "EVI": 2}},
				{"properties": {"Name": "B", "year": 2020, "month": 2, "EVI": 3}}
			]},
			{"features": [
				{"properties": {"Name": "A", "date": "2020-01-01", "EVI": 1}},
				{"properties": {"Name": "A", "date": "2020-01-17", "EVI": 4}}
			]}
		  ]}`,
		`{"data": {"analysisType": "Temporal", "temporalResolution": "Monthly", "variable": "EVI"},
		  "results": [{"features": [{"properties": {"Name": "C", "year": 2020, "month": 3, "EVI": 9}}]}]}`,
	))

	require.Len(t, result.Charts, 2)
	assert.True(t, result.SideBySide)
	assert.Equal(t, schema.BarChart, result.Charts[0].Kind)
	assert.Equal(t, schema.LineChart, result.Charts[1].Kind)

	for _, chart := range result.Charts {
		for _, s := range chart.Dataset.Datasets {
			assert.Len(t, s.Data, len(chart.Dataset.Labels), "series %q", s.Label)
		}
	}

	bar := result.Charts[0].Dataset
	assert.Equal(t, []string{"Jan 2020", "Feb 2020"}, bar.Labels)
	want := []*float64{nil, nil}
	if diff := cmp.Diff(want, bar.Datasets[4].Data); diff != "" {
		t.Errorf("off-axis series mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "C (Result 1)", bar.Datasets[4].Label)

	line := result.Charts[1].Dataset
	assert.Equal(t, []string{"2020-01-01", "2020-01-17"}, line.Labels)
	assert.Equal(t, "A (Result 2)", line.Datasets[0].Label)
}

func TestRenderHugeValuesStayEncodable(t *testing.T) {
	result := Render(raws(`{
		"data": {"analysisType": "Temporal", "temporalResolution": "Annual", "variable": "v"},
		"results": [{"features": [
			{"properties": {"Name": "A", "year": 2020, "v": 1e308}},
			{"properties": {"Name": "A", "year": 2021, "v": 1e308}}
		]}]
	}`))

	require.Len(t, result.Charts, 1)
	trend := result.Charts[0].Dataset.Datasets[1]
	require.Equal(t, schema.TrendSeries, trend.Kind)
	for _, v := range trend.Data {
		assert.InEpsilon(t, 1e308, *v, 1e-9)
	}
	_, err := json.Marshal(result)
	require.NoError(t, err)
}

func TestRenderLogsUnknownType(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Render(raws(`{"data": {"analysisType": "Hydrology"}}`), WithLogger(zap.New(core)))

	entries := logs.FilterMessage("unknown analysis type").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Hydrology", entries[0].ContextMap()["type"])
}

func TestDetectType(t *testing.T) {
	_, ok := DetectType(nil)
	assert.False(t, ok)

	got, ok := DetectType([]schema.Envelope{{}, {Meta: schema.EnvelopeMeta{AnalysisType: schema.BaselineAnalysis}}})
	require.True(t, ok)
	assert.Equal(t, schema.BaselineAnalysis, got)
}
