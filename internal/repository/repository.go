package repository

import (
	"context"
	"errors"
	"fmt"

	"athletic-store/internal/config"
	"athletic-store/internal/database"
	"athletic-store/internal/model"

	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned by Open when no document store is configured.
var ErrNotConfigured = errors.New("document store not configured")

// DocumentRepository is a generic accessor over named document collections.
type DocumentRepository interface {
	// CreateDocument stamps created_at and updated_at, inserts the document
	// and returns the store-assigned identifier as a string.
	CreateDocument(ctx context.Context, collection string, doc model.Document) (string, error)

	// GetDocuments returns the documents whose top-level fields equal every
	// entry in filter. A limit of zero or less returns all matches.
	GetDocuments(ctx context.Context, collection string, filter model.Document, limit int) ([]model.Document, error)

	// GetDocument returns a single document by identifier, or
	// model.ErrDocumentNotFound.
	GetDocument(ctx context.Context, collection, id string) (model.Document, error)

	// ListCollectionNames returns the names of the collections holding documents.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Name returns the database name.
	Name() string

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close(ctx context.Context) error
}

// Open connects to the document store named by cfg.URL.
// It returns ErrNotConfigured when the URL is empty, or when a MongoDB URL
// is given without a database name.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (DocumentRepository, error) {
	if !cfg.URLSet() {
		return nil, ErrNotConfigured
	}

	driver, err := cfg.Driver()
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.DriverMongo:
		if !cfg.NameSet() {
			return nil, fmt.Errorf("%w: DATABASE_NAME is required for MongoDB", ErrNotConfigured)
		}
		client, err := database.NewMongoClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewMongoRepository(client, cfg.Name, logger), nil

	default:
		pool, err := database.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := EnsureSchema(ctx, pool); err != nil {
			logger.Warn().Err(err).Msg("failed to ensure documents schema")
		}
		return NewPostgresRepository(pool, logger), nil
	}
}
