package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/landsense/chartkit/schema"
	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNotJSON is returned when an input document is not a JSON object or array.
var ErrNotJSON = errors.New("document is not a JSON object or array")

// rawPayload is the data/results pair shared by both envelope shapes.
type rawPayload struct {
	Data    json.RawMessage `json:"data"`
	Results json.RawMessage `json:"results"`
}

// rawEnvelope accepts both {analysis_results: {data, results}} and {data, results}.
type rawEnvelope struct {
	AnalysisResults json.RawMessage `json:"analysis_results"`
	rawPayload
}

// SplitDocument splits an input document into envelope payloads.
// A top-level array yields its elements; a single object yields itself.
func SplitDocument(doc []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode envelope array: %w", err)
		}
		return items, nil
	case '{':
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("failed to decode envelope object: %w", ErrNotJSON)
		}
		return []json.RawMessage{json.RawMessage(trimmed)}, nil
	default:
		return nil, ErrNotJSON
	}
}

// Normalize converts one raw payload into the canonical envelope.
// Fields of the wrapped shape take precedence and fall back to the
// unwrapped ones one at a time. Malformed parts read as absent.
func Normalize(raw json.RawMessage) schema.Envelope {
	var env rawEnvelope
	if !isObject(raw) || json.Unmarshal(raw, &env) != nil {
		return schema.Envelope{}
	}

	data, results := env.Data, env.Results
	var wrapped rawPayload
	if isObject(env.AnalysisResults) && json.Unmarshal(env.AnalysisResults, &wrapped) == nil {
		if isPresent(wrapped.Data) {
			data = wrapped.Data
		}
		if isPresent(wrapped.Results) {
			results = wrapped.Results
		}
	}

	return schema.Envelope{
		Meta:   decodeMeta(data),
		Blocks: decodeBlocks(results),
	}
}

// NormalizeAll normalizes every payload, keeping order.
func NormalizeAll(raws []json.RawMessage) []schema.Envelope {
	envs := make([]schema.Envelope, len(raws))
	for i, raw := range raws {
		envs[i] = Normalize(raw)
	}
	return envs
}

func isPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeMeta(raw json.RawMessage) schema.EnvelopeMeta {
	var props schema.Properties
	if !isObject(raw) || json.Unmarshal(raw, &props) != nil {
		return schema.EnvelopeMeta{}
	}
	meta := schema.EnvelopeMeta{
		Variable:           TextOr(props, "variable", ""),
		TemporalResolution: TextOr(props, "temporalResolution", ""),
		Landscape:          TextOr(props, "landscape", ""),
		Latitude:           NumberPtr(props, "latitude"),
		Longitude:          NumberPtr(props, "longitude"),
	}
	// Only a string tag can ever match a known type.
	if t, ok := props["analysisType"].(string); ok {
		meta.AnalysisType = schema.AnalysisType(t)
	}
	return meta
}

// decodeBlocks reads results as an array of blocks, or as a single block
// when it is an object carrying features directly.
func decodeBlocks(raw json.RawMessage) []schema.ResultBlock {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(trimmed, &items) != nil {
			return nil
		}
		blocks := make([]schema.ResultBlock, len(items))
		for i, item := range items {
			blocks[i] = decodeBlock(item)
		}
		return blocks
	case '{':
		return []schema.ResultBlock{decodeBlock(trimmed)}
	default:
		return nil
	}
}

func decodeBlock(raw json.RawMessage) schema.ResultBlock {
	var fields struct {
		Features json.RawMessage `json:"features"`
		Columns  json.RawMessage `json:"columns"`
	}
	if !isObject(raw) || json.Unmarshal(raw, &fields) != nil {
		return schema.ResultBlock{}
	}
	return schema.ResultBlock{
		Features: decodeFeatures(fields.Features),
		Columns:  decodeColumns(fields.Columns),
	}
}

// decodeFeatures keeps every object feature. A feature whose properties
// are missing or not an object keeps an empty property map.
func decodeFeatures(raw json.RawMessage) []schema.Feature {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}
	features := make([]schema.Feature, 0, len(items))
	for _, item := range items {
		if !isObject(item) {
			continue
		}
		var f struct {
			Properties json.RawMessage `json:"properties"`
		}
		if json.Unmarshal(item, &f) != nil {
			continue
		}
		props := schema.Properties{}
		if isObject(f.Properties) {
			_ = json.Unmarshal(f.Properties, &props)
		}
		features = append(features, schema.Feature{Properties: props})
	}
	return features
}

// decodeColumns reads the column mapping in its source order.
func decodeColumns(raw json.RawMessage) []schema.Column {
	if !isObject(raw) {
		return nil
	}
	om := orderedmap.New[string, any]()
	if err := json.Unmarshal(raw, om); err != nil {
		return nil
	}
	columns := make([]schema.Column, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		columns = append(columns, schema.Column{Name: pair.Key, Type: cast.ToString(pair.Value)})
	}
	return columns
}
