package core

import (
	"encoding/json"

	"github.com/landsense/chartkit/schema"
	"go.uber.org/zap"
)

// Render normalizes raw envelope payloads and routes them to the matching
// renderer. It never fails: empty input and unknown types come back as
// sentinel results.
func Render(raws []json.RawMessage, opts ...Option) schema.RenderResult {
	return RenderEnvelopes(NormalizeAll(raws), opts...)
}

// RenderEnvelopes routes already normalized envelopes by the analysis type
// of the first non-empty one. Type tags are matched exactly.
func RenderEnvelopes(envs []schema.Envelope, opts ...Option) schema.RenderResult {
	cfg := applyOptions(opts)
	if len(envs) == 0 {
		return schema.NoResults()
	}

	analysisType, ok := DetectType(envs)
	if !ok {
		cfg.logger.Debug("no non-empty envelope", zap.Int("envelopes", len(envs)))
		return schema.NoResults()
	}

	if _, known := schema.ValidAnalysisTypes[analysisType]; !known {
		cfg.logger.Debug("unknown analysis type", zap.String("type", string(analysisType)))
		return schema.UnknownType(analysisType)
	}

	switch analysisType {
	case schema.BaselineAnalysis:
		return renderBaseline(envs)
	case schema.TemporalAnalysis:
		return renderTemporal(envs, cfg)
	default:
		return renderSpatial(envs, cfg)
	}
}

// DetectType returns the analysis type of the first non-empty envelope.
func DetectType(envs []schema.Envelope) (schema.AnalysisType, bool) {
	for i := range envs {
		if !envs[i].IsZero() {
			return envs[i].Meta.AnalysisType, true
		}
	}
	return "", false
}
