package service

import (
	"testing"

	"digital-storefront/internal/models"
)

func TestCreatePayPalOrder_StubResponse(t *testing.T) {
	svc := NewPaymentService()

	resp := svc.CreatePayPalOrder(models.OrderRequest{
		Items: []models.CartItem{
			{ProductID: "prod-a", Quantity: 1},
			{ProductID: "prod-b", Quantity: 5},
		},
	})

	if resp.Status != "READY_FOR_PAYPAL_INTEGRATION" {
		t.Errorf("expected pending-integration status, got %s", resp.Status)
	}
	if resp.OrderID == "" {
		t.Error("expected a generated order id")
	}
	// placeholder charge is per item entry, quantity is ignored
	if resp.TotalAmount != 10.0 {
		t.Errorf("expected placeholder total 10.0, got %f", resp.TotalAmount)
	}
	if len(resp.NextSteps) != 4 {
		t.Errorf("expected 4 next steps, got %d", len(resp.NextSteps))
	}
}

func TestCreatePayPalOrder_SkipsEmptyProductIDs(t *testing.T) {
	svc := NewPaymentService()

	resp := svc.CreatePayPalOrder(models.OrderRequest{
		Items: []models.CartItem{
			{ProductID: "prod-a", Quantity: 1},
			{ProductID: "", Quantity: 1},
		},
	})

	if resp.TotalAmount != 5.0 {
		t.Errorf("expected placeholder total 5.0, got %f", resp.TotalAmount)
	}
}

func TestCreatePayPalOrder_FreshIDPerCall(t *testing.T) {
	svc := NewPaymentService()
	req := models.OrderRequest{Items: []models.CartItem{{ProductID: "prod-a", Quantity: 1}}}

	first := svc.CreatePayPalOrder(req)
	second := svc.CreatePayPalOrder(req)

	if first.OrderID == second.OrderID {
		t.Error("expected a fresh order id per call")
	}
}
