package core

import (
	"math"
	"strconv"

	"github.com/landsense/chartkit/schema"
	"gonum.org/v1/gonum/stat"
)

// Trend fits an ordinary least-squares line through the finite, non-nil
// points of values, using the index as x, and evaluates it at every index.
// With fewer than two points the output is flat at values[0], or zero when
// that is missing. The output never contains NaN or Inf.
func Trend(values []*float64) []float64 {
	xs := make([]float64, 0, len(values))
	ys := make([]float64, 0, len(values))
	var scale float64
	for i, v := range values {
		if v == nil || !finite(*v) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, *v)
		scale = math.Max(scale, math.Abs(*v))
	}

	if len(xs) < 2 || scale == 0 {
		return flatTrend(values)
	}

	// Fit on ys scaled into [-1, 1] so means and squares cannot overflow.
	for i := range ys {
		ys[i] /= scale
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	out := make([]float64, len(values))
	for i := range out {
		out[i] = (intercept + slope*float64(i)) * scale
		if !finite(out[i]) {
			return flatTrend(values)
		}
	}
	return out
}

// flatTrend is the degenerate fit: values[0] everywhere, or zero.
func flatTrend(values []*float64) []float64 {
	out := make([]float64, len(values))
	var flat float64
	if len(values) > 0 && values[0] != nil && finite(*values[0]) {
		flat = *values[0]
	}
	for i := range out {
		out[i] = flat
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// TrendOverlay builds the unlabeled, zero-radius overlay for a data series.
// It shares the parent's color.
func TrendOverlay(parent schema.Series) schema.Series {
	return schema.Series{
		Data:        schema.Floats(Trend(parent.Data)...),
		Color:       parent.Color,
		Kind:        schema.TrendSeries,
		PointRadius: schema.TrendPointRadius,
		Parent:      parent.Label,
	}
}

// TrendChart charts ad hoc values against their index, with the fitted
// line as an overlay.
func TrendChart(values []*float64) schema.Chart {
	labels := make([]string, len(values))
	for i := range values {
		labels[i] = strconv.Itoa(i)
	}
	data := schema.Series{
		Label:       "values",
		Data:        values,
		Color:       ColorAt(0),
		Kind:        schema.DataSeries,
		PointRadius: schema.DataPointRadius,
	}
	return schema.Chart{
		Kind:    schema.LineChart,
		Caption: "Trend",
		Dataset: schema.ChartDataset{
			Labels:   labels,
			Datasets: []schema.Series{data, TrendOverlay(data)},
		},
	}
}
