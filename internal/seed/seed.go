// Package seed loads catalog documents from gzipped JSON-lines files and
// inserts them into the document store.
package seed

import (
	"context"
	"encoding/json"
)

// Record is one non-blank line of a seed file.
type Record struct {
	// Line is the 1-based line number within the source file.
	Line int
	Data json.RawMessage
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines file and returns its records in order.
	Load(ctx context.Context, path string) ([]Record, error)
}

// Result summarises a seeding run.
type Result struct {
	Collection string   `json:"collection"`
	Files      int      `json:"files"`
	Inserted   int      `json:"inserted"`
	IDs        []string `json:"ids"`
}
