package service

import (
	"context"
	"fmt"

	"athletic-store/internal/model"
	"athletic-store/internal/repository"

	"github.com/rs/zerolog"
)

// newsletterService implements NewsletterService.
type newsletterService struct {
	repo   repository.DocumentRepository
	logger zerolog.Logger
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(repo repository.DocumentRepository, logger zerolog.Logger) NewsletterService {
	return &newsletterService{
		repo:   repo,
		logger: logger.With().Str("service", "newsletter").Logger(),
	}
}

// Subscribe stores a newsletter signup. Duplicate emails are stored again.
func (s *newsletterService) Subscribe(ctx context.Context, req *model.NewsletterRequest) (*model.SubscribeResponse, error) {
	if s.repo == nil {
		return nil, model.ErrDatabaseUnavailable
	}

	id, err := s.repo.CreateDocument(ctx, req.Collection(), req.Document())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store newsletter signup")
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	s.logger.Info().Str("signup_id", id).Msg("newsletter signup stored")

	return &model.SubscribeResponse{Status: "ok", ID: id}, nil
}
