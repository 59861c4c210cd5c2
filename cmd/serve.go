/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/langgpt-assistant/internal/config"
	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and browser UI",
	Long: `Serve the JSON API (/api/generate-prompt, /api/analyze-prompt,
/api/optimize-prompt, /api/templates, /api/health), the MCP tools over the
streamable HTTP transport on /mcp, Prometheus metrics on /metrics and the
browser UI on /.

Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		metrics := server.NewMetrics()
		svc, err := newService(langgpt.WithObserver(metrics.ObserveOperation))
		if err != nil {
			return err
		}

		watchCatalog(ctx, svc)
		srv := server.New(appConfig.Server, svc, appLog,
			server.WithMetrics(metrics),
			server.WithMCP(mcp.NewServer(svc, version, appLog).HTTPHandler()),
		)
		if !isQuiet() {
			printer(cmd).Success(fmt.Sprintf("LangGPT assistant on http://localhost:%d", appConfig.Server.Port))
		}
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "port to listen on")
}
