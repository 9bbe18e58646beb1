package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"digital-storefront/internal/repository"
	"digital-storefront/internal/service"

	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// ListProducts handles GET /api/products
// Returns all products, or those matching the optional category query param
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(r.Context(), category)
	if err != nil {
		h.log.Error("failed to list products", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch products", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProduct handles GET /api/products/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.log.Info("product not found", "product_id", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}

		h.log.Error("failed to get product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch product", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
}
