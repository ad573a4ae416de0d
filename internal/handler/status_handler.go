package handler

import (
	"net/http"

	"athletic-store/internal/model"
	"athletic-store/internal/service"

	"github.com/rs/zerolog"
)

// RootMessage is returned by GET /.
const RootMessage = "Athletic E-Commerce Backend Running"

// StatusHandler serves the root banner, diagnostics and schema descriptions.
type StatusHandler struct {
	diagnostics service.DiagnosticsService
	logger      zerolog.Logger
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(diagnostics service.DiagnosticsService, logger zerolog.Logger) *StatusHandler {
	return &StatusHandler{
		diagnostics: diagnostics,
		logger:      logger.With().Str("handler", "status").Logger(),
	}
}

// Root handles GET /. Any other path under / is a 404.
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, http.MethodGet)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": RootMessage})
}

// Diagnostics handles GET /test.
func (h *StatusHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, http.MethodGet)
		return
	}

	writeJSON(w, http.StatusOK, h.diagnostics.Diagnostics(r.Context()))
}

// Schema handles GET /schema.
func (h *StatusHandler) Schema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, http.MethodGet)
		return
	}

	writeJSON(w, http.StatusOK, model.Schemas())
}
