package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sahaj"
	"github.com/aretw0/sahaj/internal/logging"
	"github.com/aretw0/sahaj/internal/presentation/graph"
	"github.com/aretw0/sahaj/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the filing assistant as an MCP server over stdio.
This allows AI agents (like Claude Desktop) to drive the dialogue as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		assistant := sahaj.New(sahaj.WithLogger(logger))
		srv := mcp.NewServer(assistant, graph.NewExporter(assistant.Engine().Table()))

		// Keep Stdout clean for JSON-RPC.
		log.SetOutput(os.Stderr)
		logger.Info("Starting Sahaj MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "err", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
