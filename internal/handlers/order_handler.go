package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"digital-storefront/internal/models"
	"digital-storefront/internal/repository"
	"digital-storefront/internal/service"

	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders/create
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	confirmation, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		var notFound *service.ProductNotFoundError

		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case errors.As(err, &notFound):
			h.log.Info("order references unknown product", "product_id", notFound.ProductID)
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Product %s not found", notFound.ProductID), h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to create order", h.log)
		}
		return
	}

	h.log.Info("order created",
		"order_id", confirmation.OrderID,
		"total_amount", confirmation.TotalAmount,
		"items_count", len(confirmation.Items),
	)
	WriteJSON(w, http.StatusOK, confirmation, h.log)
}

// GetOrder handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "order_id", orderID)
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to get order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch order", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}
