package outwriter

import (
	"fmt"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/landsense/chartkit/schema"
)

const (
	pageTitle   = "Analysis results"
	chartWidth  = "900px"
	chartHeight = "480px"
	halfWidth   = "600px"
)

// writeRenderHTML renders charts with go-echarts. Results made of tables
// are written as a plain HTML document, and sentinels as a one-line page.
func writeRenderHTML(w io.Writer, result schema.RenderResult) error {
	if len(result.Tables) > 0 {
		return tablesTemplate.Execute(w, result)
	}
	if result.IsSentinel() || len(result.Charts) == 0 {
		return sentinelTemplate.Execute(w, result)
	}

	width := chartWidth
	page := components.NewPage()
	page.PageTitle = pageTitle
	if result.SideBySide {
		width = halfWidth
		page.SetLayout(components.PageFlexLayout)
	}

	for _, chart := range result.Charts {
		switch chart.Kind {
		case schema.LineChart:
			page.AddCharts(buildLineChart(chart, width))
		default:
			page.AddCharts(buildBarChart(chart, width))
		}
	}
	return page.Render(w)
}

func globalOpts(chart schema.Chart, width string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle,
			Width:     width,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: chart.Caption}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	}
}

// trendName labels an overlay in the legend after the series it follows.
func trendName(s schema.Series) string {
	return fmt.Sprintf("%s trend", s.Parent)
}

// buildBarChart draws data series as bars with their trend overlays as
// dashed lines on the same axis.
func buildBarChart(chart schema.Chart, width string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(chart, width)...)
	bar.SetXAxis(chart.Dataset.Labels)

	var trends *charts.Line
	for _, s := range chart.Dataset.Datasets {
		if s.Kind == schema.TrendSeries {
			if trends == nil {
				trends = charts.NewLine()
				trends.SetXAxis(chart.Dataset.Labels)
			}
			trends.AddSeries(trendName(s), lineData(s.Data), trendSeriesOpts(s)...)
			continue
		}
		bar.AddSeries(s.Label, barData(s.Data),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}
	if trends != nil {
		bar.Overlap(trends)
	}
	return bar
}

// buildLineChart draws every series as a line. Gaps break data lines.
func buildLineChart(chart schema.Chart, width string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(chart, width)...)
	line.SetXAxis(chart.Dataset.Labels)

	for _, s := range chart.Dataset.Datasets {
		if s.Kind == schema.TrendSeries {
			line.AddSeries(trendName(s), lineData(s.Data), trendSeriesOpts(s)...)
			continue
		}
		line.AddSeries(s.Label, lineData(s.Data),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(s.PointRadius > 0)}),
		)
	}
	return line
}

func trendSeriesOpts(s schema.Series) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Type: "dashed"}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), ConnectNulls: opts.Bool(true)}),
	}
}

// barData converts series data, leaving gaps as empty bars.
func barData(data []*float64) []opts.BarData {
	out := make([]opts.BarData, len(data))
	for i, v := range data {
		if v != nil {
			out[i] = opts.BarData{Value: *v}
		}
	}
	return out
}

// lineData converts series data, leaving gaps as breaks in the line.
func lineData(data []*float64) []opts.LineData {
	out := make([]opts.LineData, len(data))
	for i, v := range data {
		if v == nil {
			out[i] = opts.LineData{Value: nil}
			continue
		}
		out[i] = opts.LineData{Value: *v}
	}
	return out
}

var sentinelTemplate = template.Must(template.New("sentinel").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>` + pageTitle + `</title></head>
<body><p class="sentinel">{{.Message}}{{with .AnalysisType}} ({{.}}){{end}}</p></body></html>
`))

var tablesTemplate = template.Must(template.New("tables").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>` + pageTitle + `</title>
<style>table{border-collapse:collapse;margin-bottom:2em}th,td{border:1px solid #ccc;padding:4px 8px;text-align:right}</style>
</head><body>
{{range .Tables}}<h2>{{.Title}}</h2>
<table><thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody></table>
{{end}}</body></html>
`))
