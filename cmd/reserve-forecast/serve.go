package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iwvelando/reserve-forecast/internal/server"
	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(opts *cliOptions) *cobra.Command {
	var (
		serverConfigPath string
		address          string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load server configuration at %s: %w", serverConfigPath, err)
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := initializeLogger(cfg.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return serve(cmd.Context(), logger, cfg)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")
	return cmd
}

// serve runs the API until ctx is cancelled, then drains in-flight requests
// for at most the configured shutdown timeout.
func serve(ctx context.Context, logger *zap.Logger, cfg *server.Config) error {
	handler := server.NewHandlerWithTimeout(logger, cfg.UploadSizeBytes(), version, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "main.serve"),
			zap.String("address", cfg.Address),
			zap.Int64("maxUploadBytes", cfg.UploadSizeBytes()),
			zap.Duration("requestTimeout", cfg.RequestTimeout),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			logger.Error("server failed",
				zap.String("op", "main.serve"),
				zap.Error(err),
			)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server",
		zap.String("op", "main.serve"),
		zap.Duration("timeout", cfg.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main.serve"),
			zap.Error(err),
		)
		return err
	}

	logger.Info("server stopped", zap.String("op", "main.serve"))
	return nil
}
