package api

import (
	"context"
	"net/http"
	"net/url"

	"atelier-storefront/internal/models"
)

// CreateOrder places an order from the current cart plus the shipping
// address. The server snapshots the cart and clears it; each successful
// call creates exactly one order.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	if err := c.requireAuth(); err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Orders lists the current user's orders, newest first.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one of the current user's orders by id.
func (c *Client) Order(ctx context.Context, id string) (models.Order, error) {
	if err := c.requireAuth(); err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
