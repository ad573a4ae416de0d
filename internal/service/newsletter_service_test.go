package service

import (
	"context"
	"errors"
	"testing"

	"athletic-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterService_Subscribe(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	req := &model.NewsletterRequest{Email: ptr("fan@example.com")}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockDocumentRepository)
		svc := NewNewsletterService(mockRepo, logger)

		mockRepo.On("CreateDocument", ctx, model.CollectionNewsletter, model.Document{"email": "fan@example.com"}).
			Return("n1", nil)

		resp, err := svc.Subscribe(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, &model.SubscribeResponse{Status: "ok", ID: "n1"}, resp)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email stored twice", func(t *testing.T) {
		mockRepo := new(MockDocumentRepository)
		svc := NewNewsletterService(mockRepo, logger)

		mockRepo.On("CreateDocument", ctx, model.CollectionNewsletter, model.Document{"email": "fan@example.com"}).
			Return("n1", nil).Once()
		mockRepo.On("CreateDocument", ctx, model.CollectionNewsletter, model.Document{"email": "fan@example.com"}).
			Return("n2", nil).Once()

		first, err := svc.Subscribe(ctx, req)
		require.NoError(t, err)
		second, err := svc.Subscribe(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockDocumentRepository)
		svc := NewNewsletterService(mockRepo, logger)

		mockRepo.On("CreateDocument", ctx, model.CollectionNewsletter, model.Document{"email": "fan@example.com"}).
			Return("", errors.New("write conflict"))

		resp, err := svc.Subscribe(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write conflict")
		assert.Nil(t, resp)
	})

	t.Run("No repository", func(t *testing.T) {
		svc := NewNewsletterService(nil, logger)

		_, err := svc.Subscribe(ctx, req)
		assert.ErrorIs(t, err, model.ErrDatabaseUnavailable)
	})
}
