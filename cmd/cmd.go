// Package cmd defines the command-line interface for chartkit.
package cmd

import (
	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx or html")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for parquet and xlsx)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log dropped labels and routing decisions to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of renderCmd to Viper
	renderCmd.Flags().String("variable", "", "Property to chart when an envelope names no variable")
	renderCmd.Flags().String("trend", "yes", "Add trend overlays to temporal charts (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		contract.LogFatal("Error binding render flags", err)
	}
}
