package handler

import (
	"net/http"
	"strings"

	"athletic-store/internal/model"
	"athletic-store/internal/service"

	"github.com/rs/zerolog"
)

const productsPrefix = "/api/products/"

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products with optional featured and limit parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	featured, err := parseBool(r, "featured")
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	limit, err := parseLimit(r, service.DefaultProductLimit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	products, err := h.service.ListProducts(r.Context(), featured, limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	var req model.ProductRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, http.MethodGet)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, productsPrefix)
	if productID == "" || strings.Contains(productID, "/") {
		NotFound(w, r)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
