// Package catalog provides read-only product queries. It keeps the last
// successfully loaded listing; a failed refresh surfaces its error and
// leaves that last-good state in place for the caller to decide on.
package catalog

import (
	"context"
	"sync"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/models"
)

// Filter restricts a listing. Absent fields mean no restriction; set
// fields combine with AND semantics.
type Filter = api.ProductQuery

// Service queries the product catalog.
type Service struct {
	client *api.Client

	mu       sync.RWMutex
	products []models.Product
}

// NewService creates a catalog query service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List fetches products matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.Product, error) {
	products, err := s.client.Products(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return products, nil
}

// Featured lists featured products only.
func (s *Service) Featured(ctx context.Context) ([]models.Product, error) {
	featured := true
	return s.List(ctx, Filter{Featured: &featured})
}

// Get fetches one product by id.
func (s *Service) Get(ctx context.Context, id string) (models.Product, error) {
	return s.client.Product(ctx, id)
}

// Categories returns the distinct category names.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.client.Categories(ctx)
}

// LastListing returns the most recently loaded product list.
func (s *Service) LastListing() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}
