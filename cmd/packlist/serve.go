package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	packlist "github.com/wanderkit/packlist"
	"github.com/wanderkit/packlist/pkg/adapters/httpapi"
	redisadapter "github.com/wanderkit/packlist/pkg/adapters/redis"
	"github.com/wanderkit/packlist/pkg/observability"
	"github.com/wanderkit/packlist/pkg/ports"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the assistant as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		logger := buildLogger(cmd)

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		metrics := observability.NewMetrics(registry)

		opts := []packlist.Option{
			packlist.WithLogger(logger),
			packlist.WithHooks(metrics.Hooks()),
		}

		var store ports.SessionStore
		if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
			ttl, _ := cmd.Flags().GetDuration("session-ttl")
			redisStore := redisadapter.New(addr, os.Getenv("REDIS_PASSWORD"), 0,
				redisadapter.WithTTL(ttl),
			)
			defer redisStore.Close()
			store = redisStore
			opts = append(opts, packlist.WithStore(store))
		}

		assistant, err := packlist.New(catalog, opts...)
		if err != nil {
			return err
		}

		observability.NewSessionsGauge(registry, func() float64 {
			ids, err := assistant.Sessions(context.Background())
			if err != nil {
				return 0
			}
			return float64(len(ids))
		})

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		mux.Handle("/", httpapi.NewHandler(assistant, logger))

		port, _ := cmd.Flags().GetString("port")
		srv := &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting Packlist server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nShutdown started, signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", shutdownTimeout, err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for session storage (empty = in-memory)")
	serveCmd.Flags().Duration("session-ttl", 0, "Session TTL in Redis (0 = no expiry)")
	rootCmd.AddCommand(serveCmd)
}
