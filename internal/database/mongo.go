package database

import (
	"context"
	"fmt"

	"athletic-store/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to MongoDB using the configured URI.
// As with NewPool, an unreachable server only produces a warning; the
// driver keeps retrying in the background.
func NewMongoClient(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URL).
		SetMaxPoolSize(uint64(cfg.MaxConnections)).
		SetMinPoolSize(uint64(cfg.MinConnections)).
		SetConnectTimeout(connectTimeout(cfg)).
		SetServerSelectionTimeout(connectTimeout(cfg))

	if err := clientOptions.Validate(); err != nil {
		return nil, fmt.Errorf("failed to parse MongoDB URI: %w", err)
	}

	logger.Info().
		Str("driver", config.DriverMongo).
		Strs("hosts", clientOptions.Hosts).
		Str("database", cfg.Name).
		Int("max_connections", cfg.MaxConnections).
		Msg("creating MongoDB client")

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Warn().Err(err).Msg("failed to ping MongoDB, continuing without a verified connection")
		return client, nil
	}

	logger.Info().Msg("MongoDB client connected successfully")

	return client, nil
}
