package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/ink-tools/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an MCP server on stdin/stdout",
	Long: `Serve speaks MCP (JSON-RPC 2.0, one message per line) over stdin and
stdout, exposing image_info, sketch_convert, sketch_batch, pdf_trim and
pdf_page_boxes as tools. Configure it as a stdio server in your MCP client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appLogger.Debug("ink-tools MCP server %s (built %s, commit %s)", Version, BuildTime, GitCommit)
		return server.New(Version, appLogger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
