package cmd

import (
	"os"

	"github.com/landsense/chartkit/core"
	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/internal/loader"
	"github.com/spf13/cobra"
)

// renderCmd normalizes analysis envelopes and renders them.
var renderCmd = &cobra.Command{
	Use:   "render [file...]",
	Short: "Render analysis envelopes as tables and charts.",
	Long: `Read analysis envelopes from JSON files, directories or stdin and render them.

Each document holds one envelope or an array of envelopes, wrapped in
"analysis_results" or not. The analysis type of the first non-empty envelope
picks the layout:
- Baseline: one table per envelope
- Temporal: a bar chart and a line chart aligned on shared label axes
- Spatial: one bar chart of percentage differences per envelope

With no file arguments, envelopes are read from stdin.`,
	Example: `  chartkit render results.json
  chartkit render --output html --output-file report.html runs/
  cat results.json | chartkit render --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := loader.NewFileSource(cfg.Workers, os.Stdin, cfg.Logger)
		if err := core.ExecuteRender(rootCtx, cfg, src); err != nil {
			contract.LogFatal("Cannot render analysis results", err)
		}
	},
}
