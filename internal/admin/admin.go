// Package admin wraps the privileged management surface: product CRUD and
// order fulfillment status. Status changes never mutate the local order
// list optimistically; the list is re-fetched so the view stays
// server-authoritative.
package admin

import (
	"context"
	"strings"
	"sync"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/models"
)

// Service performs admin operations against the backend.
type Service struct {
	client *api.Client

	mu     sync.RWMutex
	orders []models.Order
}

// NewService creates an admin service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// CreateProduct validates and creates a catalog product.
func (s *Service) CreateProduct(ctx context.Context, req models.ProductRequest) (models.Product, error) {
	if err := validateProduct(req); err != nil {
		return models.Product{}, err
	}
	return s.client.CreateProduct(ctx, req)
}

// UpdateProduct applies a partial edit; nil fields are left untouched.
func (s *Service) UpdateProduct(ctx context.Context, id string, req models.ProductUpdateRequest) (models.Product, error) {
	if req.Price != nil && *req.Price <= 0 {
		return models.Product{}, &api.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if req.Stock != nil && *req.Stock < 0 {
		return models.Product{}, &api.ValidationError{Field: "stock", Message: "must not be negative"}
	}
	return s.client.UpdateProduct(ctx, id, req)
}

// DeleteProduct removes a product from the catalog.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.client.DeleteProduct(ctx, id)
}

func validateProduct(req models.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &api.ValidationError{Field: "name", Message: "is required"}
	}
	if req.Price <= 0 {
		return &api.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if len(req.Sizes) == 0 {
		return &api.ValidationError{Field: "sizes", Message: "at least one size is required"}
	}
	if len(req.Colors) == 0 {
		return &api.ValidationError{Field: "colors", Message: "at least one color is required"}
	}
	if req.Stock < 0 {
		return &api.ValidationError{Field: "stock", Message: "must not be negative"}
	}
	return nil
}

// ListOrders fetches every order across users, newest first, and caches
// the result for Orders().
func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.client.AdminOrders(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return orders, nil
}

// SetOrderStatus moves an order to newStatus. The value is checked
// against the five known statuses before any request; there is no
// precondition on the order's current status, any-to-any is allowed.
func (s *Service) SetOrderStatus(ctx context.Context, orderID, newStatus string) error {
	if !models.ValidOrderStatus(newStatus) {
		return &api.ValidationError{Field: "status", Message: "unknown order status " + newStatus}
	}
	if err := s.client.SetOrderStatus(ctx, orderID, newStatus); err != nil {
		return err
	}
	// Reflect server-authoritative state rather than patching locally.
	_, err := s.ListOrders(ctx)
	return err
}

// Orders returns the most recently fetched order list.
func (s *Service) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
