package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderkit/packlist/internal/logging"
	"github.com/wanderkit/packlist/pkg/adapters/file"
	"github.com/wanderkit/packlist/pkg/adapters/memory"
)

var rootCmd = &cobra.Command{
	Use:   "packlist",
	Short: "Packlist is a conversational checklist assistant",
	Long:  `Packlist walks you through a checklist item by item, records what you take, postpone or skip, and lets you review and edit the result.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "checklists.yaml", "Catalog source (.txt flat list or .yaml manifest)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// buildLogger configures logging from the --debug flag. Without it, logs
// are suppressed so they never interleave with the conversation UI.
func buildLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// loadCatalog reads the --catalog flag and loads the definitions.
func loadCatalog(cmd *cobra.Command) (*memory.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	catalog, err := file.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}
