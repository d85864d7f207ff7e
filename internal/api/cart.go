package api

import (
	"context"
	"net/http"
	"net/url"

	"atelier-storefront/internal/models"
)

// Cart fetches the authoritative cart for the current credential.
func (c *Client) Cart(ctx context.Context) (models.Cart, error) {
	if err := c.requireAuth(); err != nil {
		return models.Cart{}, err
	}
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// AddCartItem adds a product variant to the cart and returns the updated cart.
func (c *Client) AddCartItem(ctx context.Context, req models.CartItemRequest) (models.Cart, error) {
	if err := c.requireAuth(); err != nil {
		return models.Cart{}, err
	}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/items", nil, req, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// UpdateCartItem changes a line's quantity and returns the updated cart.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (models.Cart, error) {
	if err := c.requireAuth(); err != nil {
		return models.Cart{}, err
	}
	var cart models.Cart
	req := models.CartItemUpdateRequest{Quantity: quantity}
	if err := c.do(ctx, http.MethodPut, "/cart/items/"+url.PathEscape(itemID), nil, req, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// RemoveCartItem deletes a line by its cart-scoped id and returns the updated cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (models.Cart, error) {
	if err := c.requireAuth(); err != nil {
		return models.Cart{}, err
	}
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(itemID), nil, nil, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// ClearCart empties the cart and returns the (empty) updated cart.
func (c *Client) ClearCart(ctx context.Context) (models.Cart, error) {
	if err := c.requireAuth(); err != nil {
		return models.Cart{}, err
	}
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart", nil, nil, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}
