// Package cart implements the client-side cart state manager. The server
// is the single source of truth: every successful mutation replaces the
// local mirror wholesale with the server's response, and the client never
// recomputes totals, counts or subtotals itself.
package cart

import (
	"context"
	"sync"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/models"
)

// Manager mirrors the server-side cart for the current session. One
// instance exists per session; callers issue at most one mutation at a
// time so a stale response cannot overwrite a newer one.
type Manager struct {
	client *api.Client

	mu   sync.RWMutex
	cart models.Cart
}

// NewManager creates a manager with an empty local cart.
func NewManager(client *api.Client) *Manager {
	return &Manager{client: client, cart: models.EmptyCart()}
}

// Current returns a copy of the local cart mirror.
func (m *Manager) Current() models.Cart {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyCart(m.cart)
}

// Reset synchronously drops the local mirror to the empty cart. Used on
// logout and whenever no credential is held.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.cart = models.EmptyCart()
	m.mu.Unlock()
}

// Fetch loads the authoritative cart. Without a credential it resets to
// the empty cart and returns it without a network call.
func (m *Manager) Fetch(ctx context.Context) (models.Cart, error) {
	if !m.client.Authenticated() {
		m.Reset()
		return m.Current(), nil
	}
	cart, err := m.client.Cart(ctx)
	if err != nil {
		return m.Current(), err
	}
	m.replace(cart)
	return copyCart(cart), nil
}

// Add puts quantity units of a product variant in the cart. The server
// merges by (product, size, color); an existing line's quantity grows
// instead of a duplicate line appearing.
func (m *Manager) Add(ctx context.Context, productID string, quantity int, size, color string) (models.Cart, error) {
	if quantity < 1 {
		return m.Current(), api.ErrInvalidQuantity
	}
	cart, err := m.client.AddCartItem(ctx, models.CartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	})
	if err != nil {
		return m.Current(), err
	}
	m.replace(cart)
	return copyCart(cart), nil
}

// Update changes one line's quantity. Quantities below 1 are rejected
// before any request; removal goes through Remove, not Update(…, 0).
func (m *Manager) Update(ctx context.Context, itemID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return m.Current(), api.ErrInvalidQuantity
	}
	cart, err := m.client.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return m.Current(), err
	}
	m.replace(cart)
	return copyCart(cart), nil
}

// Remove deletes a line by its cart-scoped id.
func (m *Manager) Remove(ctx context.Context, itemID string) (models.Cart, error) {
	cart, err := m.client.RemoveCartItem(ctx, itemID)
	if err != nil {
		return m.Current(), err
	}
	m.replace(cart)
	return copyCart(cart), nil
}

// Clear empties the server-side cart and the local mirror.
func (m *Manager) Clear(ctx context.Context) (models.Cart, error) {
	cart, err := m.client.ClearCart(ctx)
	if err != nil {
		return m.Current(), err
	}
	m.replace(cart)
	return copyCart(cart), nil
}

func (m *Manager) replace(cart models.Cart) {
	m.mu.Lock()
	m.cart = copyCart(cart)
	m.mu.Unlock()
}

func copyCart(c models.Cart) models.Cart {
	out := c
	out.Items = make([]models.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
