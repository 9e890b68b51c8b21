package core

import (
	"fmt"

	"github.com/landsense/chartkit/schema"
)

// flattenFeatures concatenates the features of every block in order.
func flattenFeatures(env *schema.Envelope) []schema.Feature {
	var out []schema.Feature
	for i := range env.Blocks {
		out = append(out, env.Blocks[i].Features...)
	}
	return out
}

// AggregateSpatial turns one envelope's features into a single bar series
// of percentage differences. Missing names read "Unknown" and missing or
// non-numeric means read 0. It reports false when there are no features.
func AggregateSpatial(env *schema.Envelope) (schema.ChartDataset, bool) {
	features := flattenFeatures(env)
	if len(features) == 0 {
		return schema.ChartDataset{}, false
	}

	labels := make([]string, len(features))
	data := make([]*float64, len(features))
	for i, f := range features {
		labels[i] = FeatureName(f.Properties)
		data[i] = schema.Float(NumberOr(f.Properties, schema.PropMean, 0))
	}

	return schema.ChartDataset{
		Labels: labels,
		Datasets: []schema.Series{{
			Label:       schema.SpatialSeriesLabel,
			Data:        data,
			Color:       ColorAt(0),
			Kind:        schema.DataSeries,
			PointRadius: schema.DataPointRadius,
		}},
	}, true
}

// spatialCaption names the variable a spatial chart compares.
func spatialCaption(variable string) string {
	if variable == "" {
		return "Variable: " + schema.UnknownName
	}
	return fmt.Sprintf("Variable: %s", variable)
}

// renderSpatial draws one bar chart per envelope.
func renderSpatial(envs []schema.Envelope, cfg *renderConfig) schema.RenderResult {
	result := schema.RenderResult{
		Kind:         schema.SpatialResult,
		AnalysisType: schema.SpatialAnalysis,
	}
	for i := range envs {
		dataset, ok := AggregateSpatial(&envs[i])
		if !ok {
			continue
		}
		result.Charts = append(result.Charts, schema.Chart{
			Kind:    schema.BarChart,
			Caption: spatialCaption(cfg.variableFor(envs[i].Meta.Variable)),
			Dataset: dataset,
		})
	}
	if len(result.Charts) == 0 {
		return schema.NoData(schema.SpatialAnalysis)
	}
	return result
}
