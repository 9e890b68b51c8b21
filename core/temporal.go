package core

import (
	"github.com/landsense/chartkit/schema"
	"go.uber.org/zap"
)

// anyBlockHasFeatures reports whether some envelope has features at blockIndex.
func anyBlockHasFeatures(envs []schema.Envelope, blockIndex int) bool {
	for i := range envs {
		if envs[i].Block(blockIndex).HasFeatures() {
			return true
		}
	}
	return false
}

// chartKindFor maps a block position to how its chart is drawn.
func chartKindFor(blockIndex int) schema.ChartKind {
	if blockIndex == schema.TimeSeriesBlockIndex {
		return schema.LineChart
	}
	return schema.BarChart
}

// buildTemporalChart merges the block at blockIndex of every envelope into
// one chart sharing a single label axis.
func buildTemporalChart(envs []schema.Envelope, blockIndex int, cfg *renderConfig) (schema.Chart, bool) {
	axis, ok := selectAxis(envs, blockIndex)
	if !ok {
		return schema.Chart{}, false
	}

	set := NewSeriesSet(axis.labels, cfg.logger)
	var caption string
	for i := range envs {
		variable := cfg.variableFor(envs[i].Meta.Variable)
		if caption == "" {
			caption = variable
		}
		set.AddFeatures(envs[i].Block(blockIndex), variable, axis.resolution, blockIndex)
	}

	series := set.Series()
	datasets := make([]schema.Series, 0, 2*len(series))
	for _, s := range series {
		datasets = append(datasets, s)
		if cfg.trend {
			datasets = append(datasets, TrendOverlay(s))
		}
	}

	cfg.logger.Debug("built temporal chart",
		zap.Int("block", blockIndex),
		zap.Int("labels", len(axis.labels)),
		zap.Int("series", len(series)))

	return schema.Chart{
		Kind:    chartKindFor(blockIndex),
		Caption: caption,
		Dataset: schema.ChartDataset{Labels: axis.labels, Datasets: datasets},
	}, true
}

// renderTemporal draws the categorical block as a bar chart and the time
// series block as a line chart, whichever of them has features.
func renderTemporal(envs []schema.Envelope, cfg *renderConfig) schema.RenderResult {
	hasBar := anyBlockHasFeatures(envs, schema.CategoricalBlockIndex)
	hasLine := anyBlockHasFeatures(envs, schema.TimeSeriesBlockIndex)
	if !hasBar && !hasLine {
		return schema.NoData(schema.TemporalAnalysis)
	}

	result := schema.RenderResult{
		Kind:         schema.TemporalResult,
		AnalysisType: schema.TemporalAnalysis,
		SideBySide:   hasBar && hasLine,
	}
	if hasBar {
		if chart, ok := buildTemporalChart(envs, schema.CategoricalBlockIndex, cfg); ok {
			result.Charts = append(result.Charts, chart)
		}
	}
	if hasLine {
		if chart, ok := buildTemporalChart(envs, schema.TimeSeriesBlockIndex, cfg); ok {
			result.Charts = append(result.Charts, chart)
		}
	}
	return result
}
