package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/httpapi"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/mcp"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

var (
	serveAddr string
	serveMCP  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start a JSON HTTP API over the loaded dataset.

Endpoints:
  GET    /healthz                        liveness and dataset size
  GET    /api/v1/nearest?postcode=&radius=  nearest stores
  DELETE /api/v1/geocodes/{postcode}     forget one cached postcode
  DELETE /api/v1/geocodes                forget all cached postcodes

With --mcp the MCP server is also mounted at /mcp.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings, :8080)")
	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "also serve MCP over HTTP at /mcp")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	finder, err := requireFinder(cmd.Context())
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = domain.DefaultServerAddr
		if settings, err := currentSettings(); err == nil && settings.Server.Addr != "" {
			addr = settings.Server.Addr
		}
	}

	var opts []httpapi.Option
	if serveMCP {
		mcpServer, err := mcp.NewServer(&mcp.Ports{Finder: finder, Settings: settingsService})
		if err != nil {
			return err
		}
		opts = append(opts, httpapi.WithMCP(mcpServer.Handler()))
	}

	httpapi.SetMode(verbose)
	server, err := httpapi.NewServer(&httpapi.Ports{Finder: finder}, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on %s\n", addr)
	return server.Run(cmd.Context(), addr)
}
