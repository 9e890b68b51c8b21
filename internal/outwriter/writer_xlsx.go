package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/landsense/chartkit/schema"
	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31 // Excel's limit

// writeRenderXLSX writes a workbook with one sheet per table or chart.
// Chart sheets hold the axis labels in the first column and one column per series.
func writeRenderXLSX(w io.Writer, result schema.RenderResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	book := &workbook{file: f, used: map[string]struct{}{}}
	switch {
	case len(result.Tables) > 0:
		for i, table := range result.Tables {
			name := table.Title
			if name == "" {
				name = fmt.Sprintf("Table %d", i+1)
			}
			if err := book.addSheet(name, tableGrid(table)); err != nil {
				return err
			}
		}
	case len(result.Charts) > 0:
		for i, chart := range result.Charts {
			name := fmt.Sprintf("Chart %d", i+1)
			if chart.Caption != "" {
				name = fmt.Sprintf("%s %s", name, chart.Caption)
			}
			if err := book.addSheet(name, chartGrid(chart)); err != nil {
				return err
			}
		}
	default:
		grid := [][]any{{"kind", "analysis_type", "message"}, {string(result.Kind), string(result.AnalysisType), result.Message}}
		if err := book.addSheet("Result", grid); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type workbook struct {
	file   *excelize.File
	sheets int
	used   map[string]struct{}
}

// addSheet writes grid into a new sheet. The first sheet reuses the
// workbook's default sheet.
func (b *workbook) addSheet(name string, grid [][]any) error {
	name = b.uniqueName(name)
	if b.sheets == 0 {
		if err := b.file.SetSheetName(b.file.GetSheetName(0), name); err != nil {
			return err
		}
	} else if _, err := b.file.NewSheet(name); err != nil {
		return err
	}
	b.sheets++

	for r, row := range grid {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := b.file.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
	}
	if len(grid) > 0 && len(grid[0]) > 0 {
		last, _ := excelize.ColumnNumberToName(len(grid[0]))
		if err := b.file.SetColWidth(name, "A", last, 18); err != nil {
			return err
		}
	}
	return nil
}

// uniqueName makes name a valid sheet name not yet used in the workbook.
func (b *workbook) uniqueName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = "Sheet"
	}
	base := truncateRunes(name, maxSheetName)
	candidate := base
	for n := 2; ; n++ {
		if _, taken := b.used[strings.ToLower(candidate)]; !taken {
			break
		}
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	b.used[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func tableGrid(table schema.Table) [][]any {
	grid := make([][]any, 0, len(table.Rows)+1)
	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	grid = append(grid, header)
	for _, row := range table.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		grid = append(grid, cells)
	}
	return grid
}

// chartGrid lays a chart out with labels down the first column. Gaps stay empty cells.
func chartGrid(chart schema.Chart) [][]any {
	series := chart.Dataset.Datasets
	header := make([]any, 0, len(series)+1)
	header = append(header, "Label")
	for _, s := range series {
		header = append(header, seriesHeader(s))
	}

	grid := [][]any{header}
	for pos, label := range chart.Dataset.Labels {
		row := make([]any, 0, len(header))
		row = append(row, label)
		for _, s := range series {
			if v := at(s.Data, pos); v != nil {
				row = append(row, *v)
			} else {
				row = append(row, nil)
			}
		}
		grid = append(grid, row)
	}
	return grid
}
