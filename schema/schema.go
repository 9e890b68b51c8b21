// Package schema has the models shared by all parts of chartkit.
package schema

// Properties is the loosely typed property map of a single feature.
type Properties map[string]any

// Feature is one entity observation inside a result block.
type Feature struct {
	Properties Properties `json:"properties"`
}

// Column is a declared property column of a result block.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ResultBlock is one ordered list of features plus its declared columns.
type ResultBlock struct {
	Features []Feature `json:"features"`
	Columns  []Column  `json:"columns,omitempty"` // insertion order of the source mapping
}

// HasFeatures reports whether the block exists and holds at least one feature.
func (b *ResultBlock) HasFeatures() bool {
	return b != nil && len(b.Features) > 0
}

// EnvelopeMeta is the metadata of one completed analysis run.
type EnvelopeMeta struct {
	AnalysisType       AnalysisType `json:"analysisType"`
	Variable           string       `json:"variable"`
	TemporalResolution string       `json:"temporalResolution"`
	Landscape          string       `json:"landscape,omitempty"`
	Latitude           *float64     `json:"latitude,omitempty"`
	Longitude          *float64     `json:"longitude,omitempty"`
}

// Envelope is the canonical form of an analysis payload, regardless of
// whether it arrived wrapped in analysis_results or not.
type Envelope struct {
	Meta   EnvelopeMeta  `json:"data"`
	Blocks []ResultBlock `json:"results"`
}

// Block returns the result block at position i, or nil when absent.
func (e *Envelope) Block(i int) *ResultBlock {
	if i < 0 || i >= len(e.Blocks) {
		return nil
	}
	return &e.Blocks[i]
}

// CategoricalBlock returns the bar-eligible block.
func (e *Envelope) CategoricalBlock() *ResultBlock {
	return e.Block(CategoricalBlockIndex)
}

// TimeSeriesBlock returns the fine-grained dated block.
func (e *Envelope) TimeSeriesBlock() *ResultBlock {
	return e.Block(TimeSeriesBlockIndex)
}

// IsZero reports whether the envelope carries neither metadata nor results.
func (e *Envelope) IsZero() bool {
	return e.Meta == (EnvelopeMeta{}) && len(e.Blocks) == 0
}
