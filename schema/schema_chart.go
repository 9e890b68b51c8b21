package schema

// Series is one named, colored value sequence aligned to a label axis.
// A nil entry in Data means the entity has no value for that label.
type Series struct {
	Label       string     `json:"label"`
	Data        []*float64 `json:"data"`
	Color       string     `json:"color"`
	Kind        SeriesKind `json:"kind"`
	PointRadius int        `json:"pointRadius"`
	Parent      string     `json:"parent,omitempty"` // data series a trend overlay belongs to
}

// ChartDataset is the unit handed to a chart renderer.
type ChartDataset struct {
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// Chart is a dataset together with how it should be drawn.
type Chart struct {
	Kind    ChartKind    `json:"kind"`
	Caption string       `json:"caption,omitempty"`
	Dataset ChartDataset `json:"dataset"`
}

// Float returns a pointer to v, for building sparse series data.
func Float(v float64) *float64 {
	return &v
}

// Floats converts dense values into series data with no gaps.
func Floats(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = Float(values[i])
	}
	return out
}
