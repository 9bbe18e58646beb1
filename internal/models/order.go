package models

import "time"

// CartItem represents a single requested product in an incoming order.
// Quantity defaults to 1 when omitted from the request body.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest represents the payload for order creation.
// The PayPal stub endpoint accepts the same shape.
type OrderRequest struct {
	Items         []CartItem `json:"items"`
	CustomerEmail *string    `json:"customer_email,omitempty"`
}

// OrderLineItem captures a product's name and unit price at order time.
// It is a denormalized snapshot: later catalog changes never alter
// historical orders.
type OrderLineItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

// Order represents a persisted order document.
// TotalAmount always equals the sum of price*quantity over Items.
type Order struct {
	ID            string          `json:"id" bson:"id"`
	Items         []OrderLineItem `json:"items" bson:"items"`
	TotalAmount   float64         `json:"total_amount" bson:"total_amount"`
	CustomerEmail *string         `json:"customer_email" bson:"customer_email"`
	PaymentStatus string          `json:"payment_status" bson:"payment_status"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	PayPalOrderID *string         `json:"paypal_order_id" bson:"paypal_order_id"`
}

// OrderConfirmation is returned to the client after a successful
// order creation.
type OrderConfirmation struct {
	OrderID     string          `json:"order_id"`
	TotalAmount float64         `json:"total_amount"`
	Items       []OrderLineItem `json:"items"`
	Message     string          `json:"message"`
}
