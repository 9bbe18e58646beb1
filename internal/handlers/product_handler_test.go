package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"digital-storefront/internal/models"
	"digital-storefront/internal/repository"
	"digital-storefront/internal/service"
	"digital-storefront/pkg/logger"

	"github.com/go-chi/chi/v5"
)

func newProductRouter(t *testing.T) (*chi.Mux, *repository.InMemoryProductRepository) {
	t.Helper()

	repo := repository.NewInMemoryProductRepository()
	if err := repo.InsertMany(context.Background(), repository.SampleProducts(time.Now().UTC())); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	handler := NewProductHandler(service.NewProductService(repo), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Get("/api/products/{productId}", handler.GetProduct)
	return r, repo
}

func TestListProducts(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 6 {
		t.Errorf("expected 6 products, got %d", len(products))
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	r, _ := newProductRouter(t)

	tests := []struct {
		category string
		expected int
	}{
		{"resume", 2},
		{"ebook", 2},
		{"storybook", 2},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products?category="+tt.category, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}

			var products []models.Product
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(products) != tt.expected {
				t.Errorf("expected %d products in category %s, got %d", tt.expected, tt.category, len(products))
			}
			for _, p := range products {
				if p.Category != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, p.Category)
				}
			}
		})
	}
}

func TestGetProduct_Success(t *testing.T) {
	r, repo := newProductRouter(t)

	seeded, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := seeded[0]

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+want.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != want.ID {
		t.Errorf("expected product id %s, got %s", want.ID, product.ID)
	}
	if product.Name != want.Name {
		t.Errorf("expected product name %s, got %s", want.Name, product.Name)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/does-not-exist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response["error"])
	}
}
