package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		origin         string
		requestMethod  string
		requestHeaders string
		expectedStatus int
		expectHandler  bool
		expectedOrigin string
		expectedAllow  string
	}{
		{
			name:           "Preflight request",
			method:         http.MethodOptions,
			origin:         "https://shop.example.com",
			requestMethod:  http.MethodPost,
			requestHeaders: "Content-Type",
			expectedStatus: http.StatusOK,
			expectHandler:  false,
			expectedOrigin: "https://shop.example.com",
			expectedAllow:  "Content-Type",
		},
		{
			name:           "Preflight without requested headers",
			method:         http.MethodOptions,
			origin:         "https://shop.example.com",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
			expectHandler:  false,
			expectedOrigin: "https://shop.example.com",
			expectedAllow:  "*",
		},
		{
			name:           "Plain OPTIONS passes through",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
			expectedOrigin: "*",
		},
		{
			name:           "GET request with origin",
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectHandler:  true,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "POST request without origin",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
			expectedOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := CORS(testHandler)

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.requestMethod)
			}
			if tt.requestHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			if !tt.expectHandler {
				assert.Equal(t, corsAllowMethods, w.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, tt.expectedAllow, w.Header().Get("Access-Control-Allow-Headers"))
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Run("Generates ID", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Propagates incoming ID", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("Empty without middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, RequestIDFromContext(req.Context()))
	})
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		handlerStatus  int
		expectedStatus int
	}{
		{
			name:           "Successful request",
			method:         http.MethodGet,
			path:           "/api/products",
			handlerStatus:  http.StatusOK,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found request",
			method:         http.MethodGet,
			path:           "/api/unknown",
			handlerStatus:  http.StatusNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Validation error",
			method:         http.MethodPost,
			path:           "/api/newsletter",
			handlerStatus:  http.StatusUnprocessableEntity,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
			})

			handler := RequestID(Logging(logger)(testHandler))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-1")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.expectedStatus), entry["status"])
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}

func TestRecovery(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		shouldPanic    bool
		panicValue     any
		expectedStatus int
	}{
		{
			name:           "No panic",
			shouldPanic:    false,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Panic with string",
			shouldPanic:    true,
			panicValue:     "something went wrong",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Panic with error",
			shouldPanic:    true,
			panicValue:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := Recovery(logger)(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			// Ensure we don't panic in the test
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.shouldPanic {
				assert.JSONEq(t, `{"detail":"Internal Server Error"}`, w.Body.String())
			}
		})
	}
}

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		expectedStatus int
	}{
		{
			name:           "Status OK",
			statusCode:     http.StatusOK,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Status Unprocessable",
			statusCode:     http.StatusUnprocessableEntity,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Status Internal Server Error",
			statusCode:     http.StatusInternalServerError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			rw.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.expectedStatus, rw.statusCode)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
