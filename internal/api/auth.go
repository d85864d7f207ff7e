package api

import (
	"context"
	"net/http"

	"atelier-storefront/internal/models"
)

// Register creates a new account and returns the issued token and user.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return models.TokenResponse{}, err
	}
	return resp, nil
}

// Login exchanges credentials for a bearer token and user record.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return models.TokenResponse{}, err
	}
	return resp, nil
}

// Me fetches the account behind the current credential.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	if err := c.requireAuth(); err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
