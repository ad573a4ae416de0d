package service

import (
	"context"

	"athletic-store/internal/model"
)

// Default page sizes used when the caller supplies no limit.
const (
	DefaultProductLimit = 20
	DefaultCatalogLimit = 10
)

// CatalogService defines read and create operations over the catalog.
// Returned documents are serialized: the store identifier is exposed as
// a string under "id".
type CatalogService interface {
	// ListProducts retrieves products, optionally only those whose featured
	// flag equals *featured.
	ListProducts(ctx context.Context, featured *bool, limit int) ([]model.Document, error)

	// CreateProduct stores a new product and returns it as read back.
	CreateProduct(ctx context.Context, req *model.ProductRequest) (model.Document, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id string) (model.Document, error)

	// ListCollections retrieves catalog collections.
	ListCollections(ctx context.Context, limit int) ([]model.Document, error)

	// ListAthletes retrieves featured athletes.
	ListAthletes(ctx context.Context, limit int) ([]model.Document, error)
}

// NewsletterService defines newsletter signup operations.
type NewsletterService interface {
	// Subscribe stores the signup and returns its identifier.
	Subscribe(ctx context.Context, req *model.NewsletterRequest) (*model.SubscribeResponse, error)
}

// DiagnosticsService reports backend and database status.
type DiagnosticsService interface {
	Diagnostics(ctx context.Context) *model.Diagnostics
}
