package schema

// Custom string types for type safety.
type (
	// AnalysisType is the type tag carried by every analysis envelope.
	AnalysisType string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartKind represents how a chart dataset is drawn.
	ChartKind string

	// SeriesKind distinguishes real data series from synthetic overlays.
	SeriesKind string

	// ResultKind represents which rendering strategy produced a RenderResult.
	ResultKind string
)

// All analysis types supported. Comparison is exact-case.
const (
	BaselineAnalysis AnalysisType = "Baseline"
	TemporalAnalysis AnalysisType = "Temporal"
	SpatialAnalysis  AnalysisType = "Spatial"
)

// AnnualResolution is the temporal resolution that produces year labels.
// Every other resolution produces month/year labels.
const AnnualResolution = "Annual"

// Result block positions inside an envelope.
const (
	CategoricalBlockIndex = 0 // bar-eligible data
	TimeSeriesBlockIndex  = 1 // fine-grained dated data
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
	HTMLOut    OutputMode = "html"
)

// All chart kinds supported.
const (
	BarChart  ChartKind = "bar"
	LineChart ChartKind = "line"
)

// All series kinds supported.
const (
	DataSeries  SeriesKind = "data"
	TrendSeries SeriesKind = "trend"
)

// All result kinds supported.
const (
	BaselineResult    ResultKind = "baseline"
	TemporalResult    ResultKind = "temporal"
	SpatialResult     ResultKind = "spatial"
	NoDataResult      ResultKind = "no_data"
	UnknownTypeResult ResultKind = "unknown_type"
)

// Feature property keys with a fixed meaning.
const (
	PropName  = "Name"
	PropYear  = "year"
	PropMonth = "month"
	PropDate  = "date"
	PropMean  = "mean"
)

// Fallback and display strings.
const (
	UnknownName        = "Unknown"
	NotAvailable       = "N/A"
	SpatialSeriesLabel = "% difference to reference area"

	NoResultsMessage   = "No analysis results available"
	UnknownTypeMessage = "Unknown analysis type"
	NoDataMessage      = "No data available"
)

// Point radii used by chart renderers.
const (
	DataPointRadius  = 3
	TrendPointRadius = 0
)

// ValidAnalysisTypes lists all routable analysis types.
var ValidAnalysisTypes = map[AnalysisType]struct{}{
	BaselineAnalysis: {},
	TemporalAnalysis: {},
	SpatialAnalysis:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
	HTMLOut:    {},
}

// BinaryOutputModes lists output modes that cannot be written to a terminal.
var BinaryOutputModes = map[OutputMode]struct{}{
	ParquetOut: {},
	XLSXOut:    {},
}
