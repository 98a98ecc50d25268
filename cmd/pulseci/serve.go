package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/config"
	pulsecimcp "github.com/qntmpulse/pulseci/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run pulseci as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "pulseci": {
        "command": "pulseci",
        "args": ["serve"]
      }
    }
  }

Available tools: list_workflows, show_workflow, check_workflows, emit_workflows`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := config.WorkflowsDir(dir)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			server := pulsecimcp.NewServer(buildVersion(), target)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Target directory for check/emit tools (default <repo root>/.github/workflows)")

	return cmd
}
