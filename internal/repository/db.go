package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// documentsSchema stores every collection in one JSONB table.
const documentsSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, created_at);
	CREATE INDEX IF NOT EXISTS idx_documents_body ON documents USING GIN (body jsonb_path_ops);
`

// EnsureSchema creates the documents table and its indexes if missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, documentsSchema); err != nil {
		return fmt.Errorf("failed to create documents schema: %w", err)
	}
	return nil
}
