package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"athletic-store/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies accepted by JSON endpoints.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Detail: message})
}

// writeValidationError writes a 422 response listing the failed fields.
func writeValidationError(w http.ResponseWriter, verr *model.ValidationError, logger zerolog.Logger) {
	logger.Debug().Str("error", verr.Error()).Msg("validation failed")
	writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{Detail: verr.Fields})
}

// writeServiceError maps a service error to its HTTP response.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr, logger)
	case errors.Is(err, model.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, "Not Found", logger)
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), logger)
	}
}

// MethodNotAllowed writes a 405 response advertising the allowed methods.
func MethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{Detail: "Method Not Allowed"})
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Detail: "Not Found"})
}

// decodeBody reads the request body into dst and validates it. On failure
// the response has already been written and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, dst model.Schema, logger zerolog.Logger) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", logger)
			return false
		}
		writeError(w, http.StatusBadRequest, "failed to read request body", logger)
		return false
	}

	if err := model.Decode(data, dst); err != nil {
		writeServiceError(w, err, logger)
		return false
	}
	return true
}

// parseLimit reads the limit query parameter, returning def when absent.
func parseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, model.NewValidationError(
			[]string{"query", "limit"},
			"Input should be a valid integer, unable to parse string as an integer",
			model.ErrTypeIntParsing,
		)
	}
	return limit, nil
}

// parseBool reads an optional boolean query parameter.
func parseBool(r *http.Request, name string) (*bool, error) {
	if !r.URL.Query().Has(name) {
		return nil, nil
	}

	var v bool
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name))) {
	case "true", "t", "1", "yes", "y", "on":
		v = true
	case "false", "f", "0", "no", "n", "off":
		v = false
	default:
		return nil, model.NewValidationError(
			[]string{"query", name},
			"Input should be a valid boolean, unable to interpret input",
			model.ErrTypeBoolParsing,
		)
	}
	return &v, nil
}
