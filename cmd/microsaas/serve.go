package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/microsaas/console/internal/httpserver"
	"github.com/microsaas/console/internal/logging"
)

func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the console as a web page",
		Long: `Serve the console over HTTP. Every browser gets its own session,
kept in memory until it is evicted by newer ones.

Routes:
  GET  /                  the page
  POST /nav/:id           select a page
  POST /sidebar/toggle    collapse or expand the sidebar
  POST /header/menu       same, from the header menu button
  POST /overlay/dismiss   collapse the sidebar from the overlay
  GET  /api/layout        the session's layout as JSON (?format=yaml)
  GET  /api/health        liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides http-addr)")
	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg cliConfig) error {
	logger, closeLog, err := logging.New(cfg.logging(), logging.SinkStderr)
	if err != nil {
		return err
	}
	defer closeLog()

	srv, err := httpserver.NewServer(httpserver.Config{
		Addr:         cfg.HTTPAddr,
		SessionLimit: cfg.SessionLimit,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	logger.Info("serving", zap.String("url", "http://"+srv.Addr()), zap.String("version", version))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		if err := srv.Stop(); err != nil {
			return fmt.Errorf("stopping HTTP server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
