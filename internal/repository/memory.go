package repository

import (
	"context"
	"sync"

	"digital-storefront/internal/models"
)

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. It is used as a test double; production runs against Mongo.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{}
}

// List returns all products, optionally filtered by category, in insertion order
func (r *InMemoryProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if category == "" || p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Count returns the number of stored products
func (r *InMemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}

// InsertMany appends a batch of products
func (r *InMemoryProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, products...)
	return nil
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Insert stores one order
func (r *InMemoryOrderRepository) Insert(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = order
	return nil
}

// GetByID returns an order by its ID
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// Len returns the number of stored orders
func (r *InMemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}
