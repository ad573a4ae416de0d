package router

import (
	"net/http"

	"athletic-store/internal/handler"
	"athletic-store/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	catalogHandler *handler.CatalogHandler,
	newsletterHandler *handler.NewsletterHandler,
	statusHandler *handler.StatusHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Root banner; also catches unknown paths
	mux.HandleFunc("/", statusHandler.Root)
	mux.HandleFunc("/test", statusHandler.Diagnostics)
	mux.HandleFunc("/schema", statusHandler.Schema)

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			productHandler.List(w, r)
		case http.MethodPost:
			productHandler.Create(w, r)
		default:
			handler.MethodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/collections", catalogHandler.ListCollections)
	mux.HandleFunc("/api/athletes", catalogHandler.ListAthletes)
	mux.HandleFunc("/api/newsletter", newsletterHandler.Subscribe)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
