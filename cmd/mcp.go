package cmd

import (
	"capsection/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve capsection tools to AI assistants over MCP (stdio)",
		Long: `Starts an MCP server on stdin/stdout with two tools:

  render_section     render the section as html, page or text
  list_capabilities  list the capabilities and derived references as JSON

Logs go to stderr so they never mix with the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return mcpserver.New(a, rootCmd.Version).ServeStdio()
		},
	}
}
