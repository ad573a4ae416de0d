package database

import (
	"context"
	"fmt"
	"time"

	"athletic-store/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a new PostgreSQL connection pool.
// A failed initial ping is logged but not fatal: the pool reconnects lazily
// and requests fail individually until the server is reachable.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure pool settings
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout(cfg)

	logger.Info().
		Str("driver", config.DriverPostgres).
		Str("host", poolConfig.ConnConfig.Host).
		Uint16("port", poolConfig.ConnConfig.Port).
		Str("database", poolConfig.ConnConfig.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("failed to ping database, continuing without a verified connection")
		return pool, nil
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

func connectTimeout(cfg config.DatabaseConfig) time.Duration {
	return time.Duration(cfg.ConnectTimeout) * time.Second
}
