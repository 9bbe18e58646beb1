package service

import (
	"context"

	"digital-storefront/internal/models"
	"digital-storefront/internal/repository"
)

// ProductService handles business logic for catalog browsing
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all products, or only those in the given
// category when category is non-empty
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.List(ctx, category)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
