package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// trendOutput is the JSON shape of a trend computation.
type trendOutput struct {
	Labels []string   `json:"labels"`
	Values []*float64 `json:"values"`
	Trend  []*float64 `json:"trend"`
}

// trendColumns splits a trend chart into its values and its fitted line.
func trendColumns(chart schema.Chart) (values, trend []*float64) {
	for _, s := range chart.Dataset.Datasets {
		switch s.Kind {
		case schema.TrendSeries:
			if trend == nil {
				trend = s.Data
			}
		default:
			if values == nil {
				values = s.Data
			}
		}
	}
	return values, trend
}

func newTrendOutput(chart schema.Chart) trendOutput {
	values, trend := trendColumns(chart)
	return trendOutput{Labels: chart.Dataset.Labels, Values: values, Trend: trend}
}

func at(data []*float64, i int) *float64 {
	if i < len(data) {
		return data[i]
	}
	return nil
}

// writeTrendCSV writes one record per index with the value and its fit.
func writeTrendCSV(w io.Writer, chart schema.Chart, fmtValue func(*float64, string) string) error {
	values, trend := trendColumns(chart)
	return writeCSVWithHeader(w, []string{"index", "value", "trend"}, func(cw *csv.Writer) error {
		for i, label := range chart.Dataset.Labels {
			if err := cw.Write([]string{label, fmtValue(at(values, i), ""), fmtValue(at(trend, i), "")}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeTrendText prints the values next to their fitted line.
func writeTrendText(w io.Writer, chart schema.Chart, cfg *contract.Config, fmtValue func(*float64, string) string) error {
	values, trend := trendColumns(chart)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Index", "Value", "Trend"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, label := range chart.Dataset.Labels {
		value := fmtValue(at(values, i), gapCell)
		if at(values, i) == nil {
			value = paint(contract.MissingColor, value, cfg.UseColors)
		}
		data = append(data, []string{
			label,
			value,
			paint(contract.TrendColor, fmtValue(at(trend, i), gapCell), cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Fitted %d points\n", countPresent(values))
	return err
}

func countPresent(data []*float64) int {
	var n int
	for _, v := range data {
		if v != nil {
			n++
		}
	}
	return n
}
