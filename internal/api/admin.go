package api

import (
	"context"
	"net/http"
	"net/url"

	"atelier-storefront/internal/models"
)

// CreateProduct adds a catalog product (admin only).
func (c *Client) CreateProduct(ctx context.Context, req models.ProductRequest) (models.Product, error) {
	if err := c.requireAuth(); err != nil {
		return models.Product{}, err
	}
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/admin/products", nil, req, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// UpdateProduct applies a partial edit to a product (admin only).
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.ProductUpdateRequest) (models.Product, error) {
	if err := c.requireAuth(); err != nil {
		return models.Product{}, err
	}
	var product models.Product
	if err := c.do(ctx, http.MethodPut, "/admin/products/"+url.PathEscape(id), nil, req, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog (admin only).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/admin/products/"+url.PathEscape(id), nil, nil, nil)
}

// AdminOrders lists all orders across users, newest first (admin only).
func (c *Client) AdminOrders(ctx context.Context) ([]models.Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SetOrderStatus moves an order to a new fulfillment status (admin only).
// The backend accepts any of the five statuses from any current value.
func (c *Client) SetOrderStatus(ctx context.Context, orderID, status string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	query := url.Values{"status": {status}}
	return c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(orderID)+"/status", query, nil, nil)
}

// Seed populates the demo catalog if it is empty.
func (c *Client) Seed(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/seed", nil, nil, nil)
}
