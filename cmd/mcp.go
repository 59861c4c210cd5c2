/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server over stdin/stdout so AI tools
like Claude Desktop or Cursor can generate, analyze and optimize prompts.

Tools:
  generate_langgpt_prompt, analyze_prompt, optimize_prompt, get_predefined_roles
Prompts:
  quick_role_generator, prompt_analyzer, role_customizer
Resources:
  langgpt://roles and langgpt://roles/{category}

The server will run until the client disconnects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// NOTE: stdout MUST be pure JSON-RPC; logs already go to stderr.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := newService()
		if err != nil {
			return err
		}
		watchCatalog(ctx, svc)
		srv := mcp.NewServer(svc, version, appLog)
		if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
