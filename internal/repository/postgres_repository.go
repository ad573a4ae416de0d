package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"athletic-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresRepository implements DocumentRepository on a PostgreSQL JSONB table.
type postgresRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger

	schemaMu    sync.Mutex
	schemaReady bool
}

// NewPostgresRepository creates a new PostgreSQL-backed document repository.
func NewPostgresRepository(pool *pgxpool.Pool, logger zerolog.Logger) DocumentRepository {
	return &postgresRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "postgres").Logger(),
	}
}

// ensureSchema creates the documents table on first use. It retries on
// later calls if the database was unreachable at startup.
func (r *postgresRepository) ensureSchema(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()

	if r.schemaReady {
		return nil
	}
	if err := EnsureSchema(ctx, r.pool); err != nil {
		return err
	}
	r.schemaReady = true
	return nil
}

// CreateDocument inserts a document with a new UUID identifier.
func (r *postgresRepository) CreateDocument(ctx context.Context, collection string, doc model.Document) (string, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	body := doc.Clone()
	body["created_at"] = now
	body["updated_at"] = now

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO documents (id, collection, body, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.pool.Exec(ctx, query, id, collection, data, now); err != nil {
		r.logger.Error().Err(err).Str("collection", collection).Msg("failed to insert document")
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	r.logger.Debug().Str("collection", collection).Str("id", id).Msg("document inserted")

	return id, nil
}

// GetDocuments returns matching documents in insertion order.
func (r *postgresRepository) GetDocuments(ctx context.Context, collection string, filter model.Document, limit int) ([]model.Document, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}

	if filter == nil {
		filter = model.Document{}
	}
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	// LIMIT NULL is treated by PostgreSQL as no limit.
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	query := `
		SELECT id, body
		FROM documents
		WHERE collection = $1 AND body @> $2::jsonb
		ORDER BY created_at, id
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, collection, filterJSON, limitArg)
	if err != nil {
		r.logger.Error().Err(err).
			Str("collection", collection).
			Int("limit", limit).
			Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan document row")
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating document rows")
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// GetDocument retrieves a single document by its UUID.
func (r *postgresRepository) GetDocument(ctx context.Context, collection, id string) (model.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrDocumentNotFound
	}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, body
		FROM documents
		WHERE collection = $1 AND id = $2
	`

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, collection, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("collection", collection).Str("id", id).Msg("document not found")
			return nil, model.ErrDocumentNotFound
		}
		r.logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return doc, nil
}

// ListCollectionNames returns every collection holding at least one document.
func (r *postgresRepository) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Name returns the database name from the connection config.
func (r *postgresRepository) Name() string {
	return r.pool.Config().ConnConfig.Database
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *postgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

// scanDocument decodes an (id, body) row, placing the id under "_id".
func scanDocument(row pgx.Row) (model.Document, error) {
	var (
		id   string
		body []byte
	)
	if err := row.Scan(&id, &body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc := model.Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	doc["_id"] = id

	return doc, nil
}
