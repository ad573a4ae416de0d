package service

import (
	"context"
	"errors"
	"fmt"

	"athletic-store/internal/model"
	"athletic-store/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.DocumentRepository
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service. repo may be nil when no
// document store is configured; every call then fails with
// model.ErrDatabaseUnavailable.
func NewCatalogService(repo repository.DocumentRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// ListProducts retrieves products with an optional featured filter.
func (s *catalogService) ListProducts(ctx context.Context, featured *bool, limit int) ([]model.Document, error) {
	filter := model.Document{}
	if featured != nil {
		filter["featured"] = *featured
	}
	return s.list(ctx, model.CollectionProduct, filter, limit)
}

// CreateProduct inserts a product and reads it back by its new ID.
func (s *catalogService) CreateProduct(ctx context.Context, req *model.ProductRequest) (model.Document, error) {
	if s.repo == nil {
		return nil, model.ErrDatabaseUnavailable
	}

	id, err := s.repo.CreateDocument(ctx, req.Collection(), req.Document())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	doc, err := s.repo.GetDocument(ctx, req.Collection(), id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to read back created product")
		return nil, fmt.Errorf("failed to read created product %s: %w", id, err)
	}

	s.logger.Info().Str("product_id", id).Msg("product created")

	return SerializeDocument(doc), nil
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id string) (model.Document, error) {
	if s.repo == nil {
		return nil, model.ErrDatabaseUnavailable
	}
	if id == "" {
		return nil, model.ErrDocumentNotFound
	}

	doc, err := s.repo.GetDocument(ctx, model.CollectionProduct, id)
	if err != nil {
		if errors.Is(err, model.ErrDocumentNotFound) {
			s.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, err
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return SerializeDocument(doc), nil
}

// ListCollections retrieves catalog collections.
func (s *catalogService) ListCollections(ctx context.Context, limit int) ([]model.Document, error) {
	return s.list(ctx, model.CollectionCollection, nil, limit)
}

// ListAthletes retrieves athletes.
func (s *catalogService) ListAthletes(ctx context.Context, limit int) ([]model.Document, error) {
	return s.list(ctx, model.CollectionAthlete, nil, limit)
}

func (s *catalogService) list(ctx context.Context, collection string, filter model.Document, limit int) ([]model.Document, error) {
	if s.repo == nil {
		return nil, model.ErrDatabaseUnavailable
	}

	docs, err := s.repo.GetDocuments(ctx, collection, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).
			Str("collection", collection).
			Int("limit", limit).
			Msg("failed to list documents")
		return nil, fmt.Errorf("failed to list %s documents: %w", collection, err)
	}

	s.logger.Debug().
		Str("collection", collection).
		Int("count", len(docs)).
		Int("limit", limit).
		Msg("retrieved documents")

	return SerializeDocuments(docs), nil
}
