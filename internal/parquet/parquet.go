// Package parquet provides data structures and functions for exporting
// rendered chart data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/landsense/chartkit/schema"
	"github.com/parquet-go/parquet-go"
)

// SeriesPoint is one value of one series at one axis position.
// Gaps are kept as rows with a null value so positions stay aligned.
type SeriesPoint struct {
	// Chart is the index of the chart within the render result
	Chart int32 `parquet:"chart,snappy"`

	// ChartKind is bar or line
	ChartKind string `parquet:"chart_kind,snappy,dict"`

	// Caption is the chart caption, usually the charted variable (nullable)
	Caption *string `parquet:"caption,optional,snappy"`

	// Series is the legend label of the series; empty for trend overlays
	Series string `parquet:"series,snappy"`

	// SeriesKind is data or trend
	SeriesKind string `parquet:"series_kind,snappy,dict"`

	// Parent is the data series a trend overlay belongs to (nullable)
	Parent *string `parquet:"parent,optional,snappy"`

	// Color is the hex color of the series
	Color string `parquet:"color,snappy,dict"`

	// Position is the index of the label on the chart axis
	Position int32 `parquet:"position,snappy"`

	// Label is the axis label at Position
	Label string `parquet:"label,snappy"`

	// Value is the series value at Position (nullable)
	Value *float64 `parquet:"value,optional,snappy"`
}

// TableCell is one cell of a baseline table.
type TableCell struct {
	// Table is the index of the table within the render result
	Table int32 `parquet:"table,snappy"`

	// Title is the table title, usually the landscape name (nullable)
	Title *string `parquet:"title,optional,snappy"`

	// Row is the row index within the table
	Row int32 `parquet:"row,snappy"`

	// Column is the column header
	Column string `parquet:"column,snappy,dict"`

	// Value is the cell text as displayed
	Value string `parquet:"value,snappy"`
}

// SeriesPointsFromCharts flattens every chart into long-form rows.
func SeriesPointsFromCharts(charts []schema.Chart) []SeriesPoint {
	var rows []SeriesPoint
	for ci, chart := range charts {
		caption := optional(chart.Caption)
		for _, s := range chart.Dataset.Datasets {
			parent := optional(s.Parent)
			for pos, label := range chart.Dataset.Labels {
				var value *float64
				if pos < len(s.Data) {
					value = s.Data[pos]
				}
				rows = append(rows, SeriesPoint{
					Chart:      int32(ci),
					ChartKind:  string(chart.Kind),
					Caption:    caption,
					Series:     s.Label,
					SeriesKind: string(s.Kind),
					Parent:     parent,
					Color:      s.Color,
					Position:   int32(pos),
					Label:      label,
					Value:      value,
				})
			}
		}
	}
	return rows
}

// TableCellsFromTables flattens every table into long-form rows.
func TableCellsFromTables(tables []schema.Table) []TableCell {
	var rows []TableCell
	for ti, table := range tables {
		title := optional(table.Title)
		for ri, row := range table.Rows {
			for ci, col := range table.Columns {
				if ci >= len(row) {
					break
				}
				rows = append(rows, TableCell{
					Table:  int32(ti),
					Title:  title,
					Row:    int32(ri),
					Column: col,
					Value:  row[ci],
				})
			}
		}
	}
	return rows
}

// WriteSeriesPoints writes series rows to w as a single Parquet file.
func WriteSeriesPoints(w io.Writer, data []SeriesPoint) error {
	return writeRows(w, data)
}

// WriteTableCells writes table rows to w as a single Parquet file.
func WriteTableCells(w io.Writer, data []TableCell) error {
	return writeRows(w, data)
}

// WriteRenderResult writes a render result to w. Tables are written when
// the result has any, otherwise chart series. Sentinel results produce a
// file with the series schema and no rows.
func WriteRenderResult(w io.Writer, result schema.RenderResult) error {
	if len(result.Tables) > 0 {
		return WriteTableCells(w, TableCellsFromTables(result.Tables))
	}
	return WriteSeriesPoints(w, SeriesPointsFromCharts(result.Charts))
}

func writeRows[T any](w io.Writer, data []T) error {
	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](w)
	if len(data) > 0 {
		if _, err := writer.Write(data); err != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write data to parquet file: %w", err)
		}
	}
	// Close flushes the footer, so its error matters
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
