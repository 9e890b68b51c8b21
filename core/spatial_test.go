package core

import (
	"testing"

	"github.com/landsense/chartkit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSpatial(t *testing.T) {
	env := schema.Envelope{
		Meta: schema.EnvelopeMeta{AnalysisType: schema.SpatialAnalysis},
		Blocks: []schema.ResultBlock{
			{Features: []schema.Feature{
				feature(schema.Properties{"Name": "Camp1", "mean": 12.0}),
				feature(schema.Properties{"mean": "-3.5"}),
			}},
			{Features: []schema.Feature{
				feature(schema.Properties{"Name": "Camp3", "mean": "n/a"}),
			}},
		},
	}

	dataset, ok := AggregateSpatial(&env)
	require.True(t, ok)
	assert.Equal(t, []string{"Camp1", "Unknown", "Camp3"}, dataset.Labels)
	require.Len(t, dataset.Datasets, 1)

	s := dataset.Datasets[0]
	assert.Equal(t, "% difference to reference area", s.Label)
	assert.Equal(t, Palette[0], s.Color)
	assert.Equal(t, schema.Floats(12, -3.5, 0), s.Data)
}

func TestAggregateSpatialEmpty(t *testing.T) {
	_, ok := AggregateSpatial(&schema.Envelope{})
	assert.False(t, ok)
}

func TestRenderSpatialChartPerEnvelope(t *testing.T) {
	envs := []schema.Envelope{
		{Meta: schema.EnvelopeMeta{AnalysisType: schema.SpatialAnalysis, Variable: "NDVI"},
			Blocks: []schema.ResultBlock{{Features: []schema.Feature{feature(schema.Properties{"Name": "A", "mean": 1.0})}}}},
		{Meta: schema.EnvelopeMeta{AnalysisType: schema.SpatialAnalysis}},
		{Meta: schema.EnvelopeMeta{AnalysisType: schema.SpatialAnalysis},
			Blocks: []schema.ResultBlock{{Features: []schema.Feature{feature(schema.Properties{"Name": "B", "mean": 2.0})}}}},
	}

	result := renderSpatial(envs, applyOptions(nil))
	require.Len(t, result.Charts, 2)
	assert.Equal(t, "Variable: NDVI", result.Charts[0].Caption)
	assert.Equal(t, "Variable: Unknown", result.Charts[1].Caption)
}

func TestRenderSpatialNoData(t *testing.T) {
	envs := []schema.Envelope{{Meta: schema.EnvelopeMeta{AnalysisType: schema.SpatialAnalysis}}}
	assert.Equal(t, schema.NoData(schema.SpatialAnalysis), renderSpatial(envs, applyOptions(nil)))
}
