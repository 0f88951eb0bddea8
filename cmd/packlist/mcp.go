package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	packlist "github.com/wanderkit/packlist"
	mcpadapter "github.com/wanderkit/packlist/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long:  `Exposes the assistant over the Model Context Protocol, on stdio or SSE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		assistant, err := packlist.New(catalog, packlist.WithLogger(buildLogger(cmd)))
		if err != nil {
			return err
		}

		server := mcpadapter.NewServer(assistant, packlist.Version)

		transport, _ := cmd.Flags().GetString("transport")
		switch transport {
		case "stdio":
			return server.ServeStdio()
		case "sse":
			port, _ := cmd.Flags().GetInt("port")
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ServeSSE(ctx, port)
		default:
			return fmt.Errorf("unknown transport %q (expected stdio or sse)", transport)
		}
	},
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().Int("port", 8765, "Port for the SSE transport")
	rootCmd.AddCommand(mcpCmd)
}
