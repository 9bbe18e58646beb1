package service

import (
	"digital-storefront/internal/models"

	"github.com/google/uuid"
)

// placeholderItemCharge is the flat per-item amount the PayPal stub
// reports until real credentials are configured. It is not catalog
// pricing; real totals come from OrderService.CreateOrder.
const placeholderItemCharge = 5.0

// PayPalStubResponse is the fixed payload returned while the PayPal
// integration is awaiting credentials.
type PayPalStubResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	OrderID     string   `json:"order_id"`
	TotalAmount float64  `json:"total_amount"`
	NextSteps   []string `json:"next_steps"`
}

// PaymentService is a placeholder for the PayPal integration. It never
// persists anything and never contacts a payment provider.
type PaymentService struct{}

// NewPaymentService creates a new payment service
func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// CreatePayPalOrder returns the fixed "integration pending" response.
// The reported total charges placeholderItemCharge per item entry and
// deliberately ignores quantities.
func (s *PaymentService) CreatePayPalOrder(req models.OrderRequest) *PayPalStubResponse {
	var total float64
	for _, item := range req.Items {
		if item.ProductID != "" {
			total += placeholderItemCharge
		}
	}

	return &PayPalStubResponse{
		Status:      "READY_FOR_PAYPAL_INTEGRATION",
		Message:     "PayPal integration structure ready. Add PayPal Client ID and Secret to activate payments.",
		OrderID:     uuid.NewString(),
		TotalAmount: total,
		NextSteps: []string{
			"1. Get PayPal Client ID and Secret from https://developer.paypal.com/",
			"2. Add credentials to backend/.env file",
			"3. Restart backend service",
			"4. PayPal payments will be fully functional",
		},
	}
}
