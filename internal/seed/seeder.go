package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"athletic-store/internal/model"
	"athletic-store/internal/repository"

	"github.com/rs/zerolog"
)

// ErrNoFiles is returned when a seeding run names no input files.
var ErrNoFiles = errors.New("no seed files given")

// Seeder validates seed files against a collection schema and stores them.
type Seeder struct {
	loader Loader
	repo   repository.DocumentRepository
	logger zerolog.Logger
}

// NewSeeder creates a seeder. repo may be nil when only Prepare is used.
func NewSeeder(loader Loader, repo repository.DocumentRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		repo:   repo,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Prepare loads every file concurrently and validates each record with the
// collection's schema. The returned documents carry defaults and are in
// file then line order. The first invalid record fails the whole run.
func (s *Seeder) Prepare(ctx context.Context, collection string, paths ...string) ([]model.Document, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	if _, err := model.NewSchema(collection); err != nil {
		return nil, err
	}

	type loadResult struct {
		index   int
		records []Record
		err     error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			records, err := s.loader.Load(ctx, path)
			resultChan <- loadResult{index: index, records: records, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	var docs []model.Document
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load seed file %s: %w", paths[i], result.err)
		}

		for _, rec := range result.records {
			schema, err := model.NewSchema(collection)
			if err != nil {
				return nil, err
			}
			if err := model.Decode(rec.Data, schema); err != nil {
				s.logger.Error().
					Err(err).
					Str("file", paths[i]).
					Int("line", rec.Line).
					Msg("invalid seed record")
				return nil, fmt.Errorf("%s:%d: %w", paths[i], rec.Line, err)
			}
			docs = append(docs, schema.Document())
		}
	}

	s.logger.Info().
		Str("collection", collection).
		Int("files", len(paths)).
		Int("records", len(docs)).
		Msg("seed files validated")

	return docs, nil
}

// Seed validates the files and inserts every record into collection.
// Nothing is inserted unless all records are valid.
func (s *Seeder) Seed(ctx context.Context, collection string, paths ...string) (*Result, error) {
	if s.repo == nil {
		return nil, model.ErrDatabaseUnavailable
	}

	docs, err := s.Prepare(ctx, collection, paths...)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Collection: collection,
		Files:      len(paths),
		IDs:        make([]string, 0, len(docs)),
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		id, err := s.repo.CreateDocument(ctx, collection, doc)
		if err != nil {
			return result, fmt.Errorf("failed to insert seed record %d of %d: %w", result.Inserted+1, len(docs), err)
		}
		result.IDs = append(result.IDs, id)
		result.Inserted++
	}

	s.logger.Info().
		Str("collection", collection).
		Int("inserted", result.Inserted).
		Msg("seeding complete")

	return result, nil
}
