package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"athletic-store/internal/config"
	"athletic-store/internal/handler"
	"athletic-store/internal/repository"
	"athletic-store/internal/router"
	"athletic-store/internal/service"

	"github.com/rs/zerolog"
)

const (
	shutdownTimeout   = 30 * time.Second
	storeCloseTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting athletic-store API server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore := openStore(ctx, cfg.Database, logger)
	defer closeStore()

	catalogService := service.NewCatalogService(repo, logger)
	newsletterService := service.NewNewsletterService(repo, logger)
	diagnosticsService := service.NewDiagnosticsService(repo, cfg.Database, logger)

	mux := router.New(
		handler.NewProductHandler(catalogService, logger),
		handler.NewCatalogHandler(catalogService, logger),
		handler.NewNewsletterHandler(newsletterService, logger),
		handler.NewStatusHandler(diagnosticsService, logger),
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return serve(ctx, server, logger)
}

// openStore opens the configured document store. A missing or unreachable
// store is not fatal: the server starts with a nil repository and data
// endpoints answer 500 until one is configured.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (repository.DocumentRepository, func()) {
	repo, err := repository.Open(ctx, cfg, logger)
	switch {
	case errors.Is(err, repository.ErrNotConfigured):
		logger.Warn().Err(err).Msg("running without a document store")
		return nil, func() {}
	case err != nil:
		logger.Error().Err(err).Msg("failed to open document store, running without one")
		return nil, func() {}
	}

	logger.Info().Str("database", repo.Name()).Msg("document store opened")
	return repo, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("failed to close document store")
		}
	}
}

// serve runs server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, server *http.Server, logger zerolog.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().
			Str("address", server.Addr).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
