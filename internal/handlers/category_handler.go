package handlers

import (
	"log/slog"
	"net/http"

	"digital-storefront/internal/models"
)

// CategoryHandler serves the fixed category list
type CategoryHandler struct {
	log *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		log: log,
	}
}

// ListCategories handles GET /api/categories
// The list is hardcoded and independent of store state.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]models.Category{
		"categories": models.Categories(),
	}, h.log)
}
