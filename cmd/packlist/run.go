package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	packlist "github.com/wanderkit/packlist"
	"github.com/wanderkit/packlist/internal/cli"
	"github.com/wanderkit/packlist/internal/presentation/tui"
	"github.com/wanderkit/packlist/pkg/adapters/file"
	"github.com/wanderkit/packlist/pkg/ports"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive packing conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		var store ports.SessionStore
		if dir, _ := cmd.Flags().GetString("sessions"); dir != "" {
			store = file.NewStore(dir)
		}

		opts := []packlist.Option{packlist.WithLogger(buildLogger(cmd))}
		if store != nil {
			opts = append(opts, packlist.WithStore(store))
		}

		assistant, err := packlist.New(catalog, opts...)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		render := tui.PlainRenderer()
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
			render = tui.NewRenderer()
		}

		userID, _ := cmd.Flags().GetString("user")
		loop := &cli.Loop{
			Service: assistant,
			UserID:  userID,
			In:      os.Stdin,
			Out:     os.Stdout,
			Render:  render,
		}
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		fmt.Println()
		return nil
	},
}

func init() {
	runCmd.Flags().String("user", "local", "User ID for the session")
	runCmd.Flags().String("sessions", "", "Persist sessions as JSON files in this directory")
	rootCmd.AddCommand(runCmd)
}
