package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"digital-storefront/internal/models"
	"digital-storefront/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// ProductNotFoundError reports which requested product does not exist,
// so handlers can name it in the response.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// OrderService handles order pricing and persistence
type OrderService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(products repository.ProductRepository, orders repository.OrderRepository) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
	}
}

// CreateOrder prices the requested items against the catalog, persists
// the resulting order and returns a confirmation.
//
// Every item is validated before anything is written, so an unknown
// product id fails the whole request without creating a partial order.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	lineItems := make([]models.OrderLineItem, 0, len(req.Items))

	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			// omitted quantity defaults to 1
			quantity = 1
		}
		if quantity < 0 {
			return nil, ErrInvalidQuantity
		}

		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, &ProductNotFoundError{ProductID: item.ProductID}
			}
			return nil, err
		}

		total += product.Price * float64(quantity)
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    quantity,
		})
	}

	order := models.Order{
		ID:            uuid.NewString(),
		Items:         lineItems,
		TotalAmount:   total,
		CustomerEmail: req.CustomerEmail,
		PaymentStatus: "pending",
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	return &models.OrderConfirmation{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		Items:       order.Items,
		Message:     "Order created successfully. PayPal integration ready for credentials.",
	}, nil
}

// GetOrder returns an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}
