package cmd

import (
	"github.com/landsense/chartkit/core"
	"github.com/landsense/chartkit/internal/contract"
	"github.com/spf13/cobra"
)

// trendCmd fits a trend line through values given on the command line.
var trendCmd = &cobra.Command{
	Use:   "trend [value...]",
	Short: "Fit a least-squares trend line through a series.",
	Long: `Fit an ordinary least-squares line through the given values, using their
position as x, and print the fitted value at every position.

Use "null", "nil", "-" or an empty argument to mark a gap. Gaps are skipped
by the fit but still receive a fitted value.`,
	Example: `  chartkit trend 1 null 5 7
  chartkit trend --output csv 0.41 0.45 - 0.52
  chartkit trend -- -1.5 -0.2 0.4`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		values, err := contract.ParseSparseValues(args)
		if err != nil {
			contract.LogFatal("Cannot parse values", err)
		}
		if err := core.ExecuteTrend(rootCtx, cfg, values); err != nil {
			contract.LogFatal("Cannot fit trend", err)
		}
	},
}
