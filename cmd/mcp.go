package cmd

import (
	"github.com/landsense/chartkit/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the chartkit MCP server",
	Long:  `Launch an MCP server that lets AI agents render analysis results and fit trends via standard tools.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// stdio carries the protocol, so positional args are not inputs here
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
