// Package main provides the entry point for the paper check service server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/scholarly/paper-check-service/internal/config"
	"github.com/scholarly/paper-check-service/internal/observability"
	"github.com/scholarly/paper-check-service/internal/refcheck"
	"github.com/scholarly/paper-check-service/internal/reference"
	httpserver "github.com/scholarly/paper-check-service/internal/server/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Set up structured logging.
	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		AddSource:  cfg.Logging.AddSource,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	logger = logger.With().Str("component", "server").Logger()
	logger.Info().Msg("paper-check-service starting")

	// Set up context with graceful shutdown via OS signals.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the reference registry from CSV.
	store, err := reference.Load(cfg.Reference.CSVPath, logger)
	if err != nil {
		return fmt.Errorf("load reference registry: %w", err)
	}
	logger.Info().
		Str("path", cfg.Reference.CSVPath).
		Int("papers", store.Len()).
		Bool("debug", cfg.Reference.Debug).
		Msg("reference registry loaded")

	// Set up Prometheus metrics.
	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics("papercheck", prometheus.DefaultRegisterer)
	}

	checker := refcheck.NewChecker(store, cfg.Reference.Debug, logger)

	// Set up the validation endpoint rate limiter if configured.
	var limiter *httpserver.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = httpserver.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		logger.Info().
			Float64("rps", cfg.RateLimit.RPS).
			Int("burst", cfg.RateLimit.Burst).
			Msg("rate limiting enabled")
	}

	httpCfg := httpserver.Config{
		Address:         cfg.Server.HTTPAddress(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsPath:     cfg.Metrics.Path,
		RateLimit:       limiter,
	}

	srv := httpserver.NewServer(httpCfg, checker, store, metrics, logger)

	// Channel to collect server errors.
	errCh := make(chan error, 1)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info().
		Str("http_address", httpCfg.Address).
		Msg("paper-check-service is ready")

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		logger.Info().Msg("received shutdown signal")
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
		return err
	}

	// Graceful shutdown.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
		return err
	}

	logger.Info().Msg("paper-check-service stopped")
	return nil
}
