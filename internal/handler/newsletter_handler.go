package handler

import (
	"net/http"

	"athletic-store/internal/model"
	"athletic-store/internal/service"

	"github.com/rs/zerolog"
)

// NewsletterHandler handles newsletter signups.
type NewsletterHandler struct {
	service service.NewsletterService
	logger  zerolog.Logger
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(service service.NewsletterService, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		logger:  logger.With().Str("handler", "newsletter").Logger(),
	}
}

// Subscribe handles POST /api/newsletter.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.NewsletterRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
