package core

import "github.com/landsense/chartkit/schema"

// Tabulate lays out the categorical block of one envelope as a table.
// Columns follow the declared column order after a leading Name column.
// Cells read "N/A" when the property is absent or falsy; values are not
// reformatted.
func Tabulate(env *schema.Envelope) schema.Table {
	table := schema.Table{
		Title:   env.Meta.Landscape,
		Columns: []string{schema.PropName},
	}
	block := env.CategoricalBlock()
	if block == nil {
		return table
	}
	for _, c := range block.Columns {
		// Name always leads, so a declared Name column is not repeated.
		if c.Name == schema.PropName {
			continue
		}
		table.Columns = append(table.Columns, c.Name)
	}
	for _, f := range block.Features {
		row := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			row = append(row, cell(f.Properties, col))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func cell(props schema.Properties, key string) string {
	v, ok := props[key]
	if !ok || !Truthy(v) {
		return schema.NotAvailable
	}
	return stringify(v)
}

// renderBaseline draws one table per envelope.
func renderBaseline(envs []schema.Envelope) schema.RenderResult {
	result := schema.RenderResult{
		Kind:         schema.BaselineResult,
		AnalysisType: schema.BaselineAnalysis,
	}
	var rows int
	for i := range envs {
		if envs[i].IsZero() {
			continue
		}
		table := Tabulate(&envs[i])
		rows += len(table.Rows)
		result.Tables = append(result.Tables, table)
	}
	if rows == 0 {
		return schema.NoData(schema.BaselineAnalysis)
	}
	return result
}
