package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"atelier-storefront/internal/models"
)

// ProductQuery restricts a product listing. Zero/nil fields place no
// restriction on that dimension; set fields combine with AND semantics.
type ProductQuery struct {
	Category string
	Featured *bool
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	return v
}

// Products lists catalog products matching the query.
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", query.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Categories returns the distinct category names in the catalog.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp models.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
