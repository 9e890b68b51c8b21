package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/internal/parquet"
	"github.com/landsense/chartkit/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const gapCell = "-"

// writeRenderText generates and writes the human-readable tables.
func writeRenderText(w io.Writer, result schema.RenderResult, cfg *contract.Config, fmtValue func(*float64, string) string, duration time.Duration) error {
	if result.IsSentinel() || (len(result.Tables) == 0 && len(result.Charts) == 0) {
		_, err := fmt.Fprintln(w, paint(contract.SentinelColor, sentinelLine(result), cfg.UseColors))
		return err
	}

	for i, table := range result.Tables {
		if err := writeTableText(w, i, table, cfg); err != nil {
			return err
		}
	}
	for i, chart := range result.Charts {
		if err := writeChartText(w, i, chart, cfg, fmtValue); err != nil {
			return err
		}
	}

	layout := "stacked"
	if result.SideBySide {
		layout = "side by side"
	}
	_, err := fmt.Fprintf(w, "%s render completed in %v with %d workers: %d tables, %d charts (%s)\n",
		result.AnalysisType, duration, cfg.Workers, len(result.Tables), len(result.Charts), layout)
	return err
}

func sentinelLine(result schema.RenderResult) string {
	if result.AnalysisType == "" {
		return result.Message
	}
	return fmt.Sprintf("%s (%s)", result.Message, result.AnalysisType)
}

// writeTableText prints one baseline table with its title above it.
func writeTableText(w io.Writer, index int, table schema.Table, cfg *contract.Config) error {
	title := table.Title
	if title == "" {
		title = fmt.Sprintf("Table %d", index+1)
	}
	if _, err := fmt.Fprintln(w, paint(contract.HeaderColor, title, cfg.UseColors)); err != nil {
		return err
	}

	maxWidth := GetMaxLabelWidth(cfg, len(table.Columns)-1)
	tbl := tablewriter.NewWriter(w)
	tbl.Header(table.Columns)
	tbl.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, len(table.Columns))
		for ci := range cells {
			if ci >= len(row) {
				cells[ci] = gapCell
				continue
			}
			cell := row[ci]
			if ci == 0 {
				cell = contract.TruncateLabel(cell, maxWidth)
			}
			if cell == schema.NotAvailable {
				cell = paint(contract.MissingColor, cell, cfg.UseColors)
			}
			cells[ci] = cell
		}
		data = append(data, cells)
	}

	if err := tbl.Bulk(data); err != nil {
		return err
	}
	return tbl.Render()
}

// seriesHeader names a series column. Trend overlays have no label of
// their own, so they are named after the series they belong to.
func seriesHeader(s schema.Series) string {
	if s.Kind == schema.TrendSeries {
		return s.Parent + " trend"
	}
	return s.Label
}

// writeChartText prints a chart as a table with one row per axis label
// and one column per series.
func writeChartText(w io.Writer, index int, chart schema.Chart, cfg *contract.Config, fmtValue func(*float64, string) string) error {
	title := fmt.Sprintf("Chart %d (%s)", index+1, chart.Kind)
	if chart.Caption != "" {
		title = fmt.Sprintf("%s: %s", title, chart.Caption)
	}
	if _, err := fmt.Fprintln(w, paint(contract.HeaderColor, title, cfg.UseColors)); err != nil {
		return err
	}

	series := chart.Dataset.Datasets
	maxWidth := GetMaxLabelWidth(cfg, len(series))
	headers := make([]string, 0, len(series)+1)
	headers = append(headers, "Label")
	for _, s := range series {
		headers = append(headers, contract.TruncateLabel(seriesHeader(s), maxWidth))
	}

	tbl := tablewriter.NewWriter(w)
	tbl.Header(headers)
	tbl.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(chart.Dataset.Labels))
	for pos, label := range chart.Dataset.Labels {
		row := make([]string, 0, len(headers))
		row = append(row, contract.TruncateLabel(label, maxWidth))
		for _, s := range series {
			var v *float64
			if pos < len(s.Data) {
				v = s.Data[pos]
			}
			cell := fmtValue(v, gapCell)
			switch {
			case v == nil:
				cell = paint(contract.MissingColor, cell, cfg.UseColors)
			case s.Kind == schema.TrendSeries:
				cell = paint(contract.TrendColor, cell, cfg.UseColors)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	if err := tbl.Bulk(data); err != nil {
		return err
	}
	return tbl.Render()
}

// writeRenderCSV writes the result in long form: one record per table
// cell, or one record per series value.
func writeRenderCSV(w io.Writer, result schema.RenderResult, fmtValue func(*float64, string) string) error {
	if result.IsSentinel() {
		return writeCSVWithHeader(w, []string{"kind", "analysis_type", "message"}, func(cw *csv.Writer) error {
			return cw.Write([]string{string(result.Kind), string(result.AnalysisType), result.Message})
		})
	}

	if len(result.Tables) > 0 {
		header := []string{"table", "title", "row", "column", "value"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, c := range parquet.TableCellsFromTables(result.Tables) {
				rec := []string{
					strconv.Itoa(int(c.Table)),
					deref(c.Title),
					strconv.Itoa(int(c.Row)),
					c.Column,
					c.Value,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}

	header := []string{"chart", "chart_kind", "caption", "series", "series_kind", "parent", "color", "position", "label", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range parquet.SeriesPointsFromCharts(result.Charts) {
			rec := []string{
				strconv.Itoa(int(p.Chart)),
				p.ChartKind,
				deref(p.Caption),
				p.Series,
				p.SeriesKind,
				deref(p.Parent),
				p.Color,
				strconv.Itoa(int(p.Position)),
				p.Label,
				fmtValue(p.Value, ""),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
