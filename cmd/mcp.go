package cmd

import (
	"github.com/gamesgap/gamesgap/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Gamesgap MCP server",
	Long:  `Launch an MCP server that allows AI agents to query Olympic participation metrics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate the base config up front so every tool call starts
		// from a known-good configuration.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
