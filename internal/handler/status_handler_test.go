package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"athletic-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler_Root(t *testing.T) {
	handler := NewStatusHandler(new(MockDiagnosticsService), zerolog.Nop())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Banner",
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Athletic E-Commerce Backend Running"}`,
		},
		{
			name:           "Unknown path",
			method:         http.MethodGet,
			path:           "/nope",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Not Found"}`,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			path:           "/",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"detail":"Method Not Allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Root(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestStatusHandler_Diagnostics(t *testing.T) {
	mockService := new(MockDiagnosticsService)
	handler := NewStatusHandler(mockService, zerolog.Nop())

	mockService.On("Diagnostics", mock.Anything).Return(&model.Diagnostics{
		Backend:          "✅ Running",
		Database:         "✅ Connected & Working",
		DatabaseURL:      "✅ Set",
		DatabaseName:     "✅ Set",
		ConnectionStatus: "Connected",
		Collections:      []string{"product"},
	})

	w := httptest.NewRecorder()
	handler.Diagnostics(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "✅ Running", got["backend"])
	assert.Equal(t, "✅ Set", got["database_url"])
	assert.Equal(t, []any{"product"}, got["collections"])
	for _, key := range []string{"database", "database_name", "connection_status"} {
		assert.Contains(t, got, key)
	}

	mockService.AssertExpectations(t)
}

func TestStatusHandler_Schema(t *testing.T) {
	handler := NewStatusHandler(new(MockDiagnosticsService), zerolog.Nop())

	w := httptest.NewRecorder()
	handler.Schema(w, httptest.NewRequest(http.MethodGet, "/schema", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.SchemaInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 5)
}
