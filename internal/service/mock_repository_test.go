package service

import (
	"context"

	"athletic-store/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockDocumentRepository is a mock implementation of DocumentRepository.
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) CreateDocument(ctx context.Context, collection string, doc model.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepository) GetDocuments(ctx context.Context, collection string, filter model.Document, limit int) ([]model.Document, error) {
	args := m.Called(ctx, collection, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetDocument(ctx context.Context, collection, id string) (model.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListCollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentRepository) Name() string {
	return m.Called().String(0)
}

func (m *MockDocumentRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDocumentRepository) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
