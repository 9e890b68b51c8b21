package schema

// Table is a row/column rendering of one envelope's features.
// The first column is always the feature name.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RenderResult is everything a renderer needs for one batch of envelopes.
// Sentinel results carry a Message and no tables or charts.
type RenderResult struct {
	Kind         ResultKind   `json:"kind"`
	AnalysisType AnalysisType `json:"analysisType,omitempty"`
	Message      string       `json:"message,omitempty"`
	Tables       []Table      `json:"tables,omitempty"`
	Charts       []Chart      `json:"charts,omitempty"`
	SideBySide   bool         `json:"sideBySide,omitempty"`
}

// IsSentinel reports whether the result is a message rather than data.
func (r RenderResult) IsSentinel() bool {
	return r.Kind == NoDataResult || r.Kind == UnknownTypeResult
}

// NoResults is the sentinel for an empty envelope batch.
func NoResults() RenderResult {
	return RenderResult{Kind: NoDataResult, Message: NoResultsMessage}
}

// NoData is the sentinel for a known analysis type whose envelopes hold no features.
func NoData(t AnalysisType) RenderResult {
	return RenderResult{Kind: NoDataResult, AnalysisType: t, Message: NoDataMessage}
}

// UnknownType is the sentinel for an unrecognized or missing analysis type.
func UnknownType(t AnalysisType) RenderResult {
	return RenderResult{Kind: UnknownTypeResult, AnalysisType: t, Message: UnknownTypeMessage}
}
