package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"digital-storefront/internal/models"
	"digital-storefront/internal/service"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
	log            *slog.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		log:            log,
	}
}

// CreatePayPalOrder handles POST /api/paypal/create-order
// Returns a fixed "integration pending" payload until PayPal
// credentials are configured.
func (h *PaymentHandler) CreatePayPalOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode paypal order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	resp := h.paymentService.CreatePayPalOrder(req)

	h.log.Info("paypal stub order issued", "order_id", resp.OrderID, "items_count", len(req.Items))
	WriteJSON(w, http.StatusOK, resp, h.log)
}
