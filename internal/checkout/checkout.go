// Package checkout converts the current cart plus a shipping address into
// an order. Submission is one-shot and not idempotent: each successful
// call creates exactly one order, so calling surfaces must not re-submit
// while a request is in flight.
package checkout

import (
	"context"
	"strings"
	"sync"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/cart"
	"atelier-storefront/internal/models"
)

// Service validates shipping input and places orders.
type Service struct {
	client *api.Client
	cart   *cart.Manager

	// DefaultCountry, when non-empty, is filled in for a blank country
	// field instead of rejecting it. Empty means country is required.
	DefaultCountry string

	mu        sync.RWMutex
	lastOrder string
}

// NewService creates a checkout service that refreshes mgr after a
// successful submission.
func NewService(client *api.Client, mgr *cart.Manager) *Service {
	return &Service{client: client, cart: mgr}
}

// requiredFields in validation order; country is handled separately.
var requiredFields = []struct {
	name  string
	value func(models.ShippingAddress) string
}{
	{"full_name", func(a models.ShippingAddress) string { return a.FullName }},
	{"address_line1", func(a models.ShippingAddress) string { return a.AddressLine1 }},
	{"city", func(a models.ShippingAddress) string { return a.City }},
	{"state", func(a models.ShippingAddress) string { return a.State }},
	{"postal_code", func(a models.ShippingAddress) string { return a.PostalCode }},
	{"phone", func(a models.ShippingAddress) string { return a.Phone }},
}

// Validate checks the shipping address and returns a field-identifying
// error for the first missing required field. address_line2 is always
// optional.
func (s *Service) Validate(addr models.ShippingAddress) error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(addr)) == "" {
			return &api.ValidationError{Field: f.name, Message: "is required"}
		}
	}
	if strings.TrimSpace(addr.Country) == "" && s.DefaultCountry == "" {
		return &api.ValidationError{Field: "country", Message: "is required"}
	}
	return nil
}

// Submit places an order for the current cart. Validation failures abort
// before any network call. On success the cart is re-fetched (the server
// reports it emptied) and the order id is retained for confirmation.
func (s *Service) Submit(ctx context.Context, addr models.ShippingAddress) (models.Order, error) {
	if err := s.Validate(addr); err != nil {
		return models.Order{}, err
	}
	if strings.TrimSpace(addr.Country) == "" {
		addr.Country = s.DefaultCountry
	}

	order, err := s.client.CreateOrder(ctx, models.OrderRequest{ShippingAddress: addr})
	if err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	s.lastOrder = order.ID
	s.mu.Unlock()

	// Refresh failure does not undo the placed order; the next fetch
	// will converge on the emptied server cart.
	_, _ = s.cart.Fetch(ctx)

	return order, nil
}

// LastOrderID returns the id of the most recently placed order, or "".
func (s *Service) LastOrderID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastOrder
}
