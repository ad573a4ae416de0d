package handler

import (
	"context"

	"athletic-store/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, featured *bool, limit int) ([]model.Document, error) {
	args := m.Called(ctx, featured, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req *model.ProductRequest) (model.Document, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockCatalogService) ListCollections(ctx context.Context, limit int) ([]model.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockCatalogService) ListAthletes(ctx context.Context, limit int) ([]model.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

// MockNewsletterService is a mock implementation of NewsletterService.
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, req *model.NewsletterRequest) (*model.SubscribeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscribeResponse), args.Error(1)
}

// MockDiagnosticsService is a mock implementation of DiagnosticsService.
type MockDiagnosticsService struct {
	mock.Mock
}

func (m *MockDiagnosticsService) Diagnostics(ctx context.Context) *model.Diagnostics {
	return m.Called(ctx).Get(0).(*model.Diagnostics)
}
