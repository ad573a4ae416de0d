package handler

import (
	"context"
	"net/http"

	"athletic-store/internal/model"
	"athletic-store/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles collection and athlete listings.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListCollections handles GET /api/collections.
func (h *CatalogHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListCollections)
}

// ListAthletes handles GET /api/athletes.
func (h *CatalogHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListAthletes)
}

type listFunc func(ctx context.Context, limit int) ([]model.Document, error)

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request, fn listFunc) {
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, http.MethodGet)
		return
	}

	limit, err := parseLimit(r, service.DefaultCatalogLimit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	docs, err := fn(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}
