// Package session holds the identity and bearer credential for one
// storefront session. It is created once at startup, initialized on
// login or registration, and torn down on logout; cart state belongs to
// the cart manager, which the caller resets alongside Logout.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/models"
)

// Session owns the current user identity and installs the bearer
// credential on the shared API client.
type Session struct {
	client *api.Client

	mu      sync.RWMutex
	user    *models.User
	expires time.Time
}

// New creates a logged-out session bound to client.
func New(client *api.Client) *Session {
	return &Session{client: client}
}

// Login authenticates with email and password and installs the credential.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := s.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	s.install(resp)
	return resp.User, nil
}

// Register creates an account and logs it in.
func (s *Session) Register(ctx context.Context, username, email, password string) (models.User, error) {
	resp, err := s.client.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return models.User{}, err
	}
	s.install(resp)
	return resp.User, nil
}

// Logout tears down the credential and identity. Safe to call when
// already logged out.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.expires = time.Time{}
	s.mu.Unlock()
	s.client.ClearToken()
}

func (s *Session) install(resp models.TokenResponse) {
	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.expires = tokenExpiry(resp.AccessToken)
	s.mu.Unlock()
	s.client.SetToken(resp.AccessToken)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// server is the authority, the client only wants to know when to re-login.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// User returns the logged-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// IsAdmin reports whether the logged-in user has admin rights.
func (s *Session) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin
}

// Expired reports whether the held credential is past its exp claim.
// A missing claim counts as not expired.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && !s.expires.IsZero() && time.Now().After(s.expires)
}

// Token exposes the raw credential for display or persistence.
func (s *Session) Token() string {
	return s.client.Token()
}
