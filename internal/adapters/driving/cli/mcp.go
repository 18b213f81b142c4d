package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can look up
the nearest stores to a postcode.

The server exposes the find_nearest_locations tool and the greggs://dataset
resource. By default it communicates over stdio using JSON-RPC. Use --port
to serve streamable HTTP instead.

Examples:
  # Stdio mode (default, for desktop assistants)
  greggs-finder mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  greggs-finder mcp serve --port 8081`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	finder, err := requireFinder(cmd.Context())
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Finder: finder, Settings: settingsService})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
