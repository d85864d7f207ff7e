package backendtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-storefront/internal/models"
)

type fixture struct {
	t  *testing.T
	ts *httptest.Server
	s  *Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := New("test-secret")
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return &fixture{t: t, ts: ts, s: s}
}

// request performs a raw wire-level call and decodes the JSON reply.
func (f *fixture) request(method, path, token string, body, out interface{}) int {
	f.t.Helper()
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(f.t, err)
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, f.ts.URL+path, reqBody)
	require.NoError(f.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(f.t, err)
	defer resp.Body.Close()
	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(f.t, err)
		if len(data) > 0 {
			require.NoError(f.t, json.Unmarshal(data, out), "body: %s", data)
		}
	}
	return resp.StatusCode
}

func (f *fixture) registerShopper(name string) models.TokenResponse {
	f.t.Helper()
	var tok models.TokenResponse
	status := f.request(http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "password1",
	}, &tok)
	require.Equal(f.t, http.StatusOK, status)
	require.NotEmpty(f.t, tok.AccessToken)
	return tok
}

func TestSeedIsIdempotent(t *testing.T) {
	f := newFixture(t)

	var first map[string]interface{}
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/seed", "", nil, &first))
	count := first["product_count"].(float64)
	assert.Greater(t, count, 0.0)

	var second map[string]interface{}
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/seed", "", nil, &second))
	assert.Equal(t, "Database already seeded", second["message"])
	assert.Equal(t, count, second["product_count"])
}

func TestCartRequiresBearerToken(t *testing.T) {
	f := newFixture(t)

	var errBody map[string]string
	status := f.request(http.MethodGet, "/api/cart", "", nil, &errBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authenticated", errBody["detail"])

	status = f.request(http.MethodGet, "/api/cart", "garbage-token", nil, &errBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", errBody["detail"])
}

func TestCartMergeAndCounts(t *testing.T) {
	f := newFixture(t)
	p := f.s.AddProduct(models.Product{Name: "Tee", Price: 45, Category: "T-Shirts", Sizes: []string{"M"}, Colors: []string{"Black"}})
	tok := f.registerShopper("merge")

	var cart models.Cart
	add := models.CartItemRequest{ProductID: p.ID, Quantity: 2, Size: "M", Color: "Black"}
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/cart/items", tok.AccessToken, add, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount, "item_count is the quantity sum, not the line count")
	assert.Equal(t, 90.00, cart.Total)

	// Same variant merges; different color opens a new line.
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/cart/items", tok.AccessToken, add, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	other := add
	other.Color = "White"
	other.Quantity = 1
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/cart/items", tok.AccessToken, other, &cart))
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestCartUpdateBindingRejectsZero(t *testing.T) {
	f := newFixture(t)
	p := f.s.AddProduct(models.Product{Name: "Tee", Price: 45, Category: "T-Shirts", Sizes: []string{"M"}, Colors: []string{"Black"}})
	tok := f.registerShopper("zero")

	var cart models.Cart
	add := models.CartItemRequest{ProductID: p.ID, Quantity: 1, Size: "M", Color: "Black"}
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/cart/items", tok.AccessToken, add, &cart))

	status := f.request(http.MethodPut, "/api/cart/items/"+cart.Items[0].ID, tok.AccessToken, map[string]int{"quantity": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestOrderFlowSnapshotsAndClearsCart(t *testing.T) {
	f := newFixture(t)
	p := f.s.AddProduct(models.Product{Name: "Coat", Price: 295, Category: "Outerwear", Sizes: []string{"M"}, Colors: []string{"Camel"}})
	tok := f.registerShopper("orderer")

	var cart models.Cart
	add := models.CartItemRequest{ProductID: p.ID, Quantity: 1, Size: "M", Color: "Camel"}
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/cart/items", tok.AccessToken, add, &cart))

	addr := models.ShippingAddress{
		FullName: "A B", AddressLine1: "1 St", City: "C", State: "S",
		PostalCode: "12345", Country: "X", Phone: "555",
	}
	var order models.Order
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/orders", tok.AccessToken, models.OrderRequest{ShippingAddress: addr}, &order))
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, 295.00, order.Total)
	assert.Equal(t, addr, order.ShippingAddress)

	require.Equal(t, http.StatusOK, f.request(http.MethodGet, "/api/cart", tok.AccessToken, nil, &cart))
	assert.Empty(t, cart.Items)

	// Empty cart cannot order again.
	var errBody map[string]string
	status := f.request(http.MethodPost, "/api/orders", tok.AccessToken, models.OrderRequest{ShippingAddress: addr}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cart is empty", errBody["detail"])

	// The order is visible to its owner only.
	var got models.Order
	require.Equal(t, http.StatusOK, f.request(http.MethodGet, "/api/orders/"+order.ID, tok.AccessToken, nil, &got))
	assert.Equal(t, order.ID, got.ID)

	stranger := f.registerShopper("stranger")
	status = f.request(http.MethodGet, "/api/orders/"+order.ID, stranger.AccessToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdminSurfaceEnforcesRole(t *testing.T) {
	f := newFixture(t)
	tok := f.registerShopper("plain")

	var errBody map[string]string
	status := f.request(http.MethodGet, "/api/admin/orders", tok.AccessToken, nil, &errBody)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Admin access required", errBody["detail"])
}

func TestOrderStatusEndpoint(t *testing.T) {
	f := newFixture(t)
	p := f.s.AddProduct(models.Product{Name: "Tee", Price: 45, Category: "T-Shirts", Sizes: []string{"M"}, Colors: []string{"Black"}})
	tok := f.registerShopper("buyer")

	var cart models.Cart
	add := models.CartItemRequest{ProductID: p.ID, Quantity: 1, Size: "M", Color: "Black"}
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/cart/items", tok.AccessToken, add, &cart))
	addr := models.ShippingAddress{FullName: "A B", AddressLine1: "1 St", City: "C", State: "S", PostalCode: "1", Country: "X", Phone: "5"}
	var order models.Order
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/orders", tok.AccessToken, models.OrderRequest{ShippingAddress: addr}, &order))

	_, err := f.s.CreateAdmin("boss", "boss@example.com", "admin123")
	require.NoError(t, err)
	var adminTok models.TokenResponse
	require.Equal(t, http.StatusOK, f.request(http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "boss@example.com", Password: "admin123"}, &adminTok))

	path := fmt.Sprintf("/api/admin/orders/%s/status?status=%s", order.ID, models.OrderStatusShipped)
	require.Equal(t, http.StatusOK, f.request(http.MethodPut, path, adminTok.AccessToken, nil, nil))

	var got models.Order
	require.Equal(t, http.StatusOK, f.request(http.MethodGet, "/api/orders/"+order.ID, tok.AccessToken, nil, &got))
	assert.Equal(t, models.OrderStatusShipped, got.Status)

	status := f.request(http.MethodPut, "/api/admin/orders/"+order.ID+"/status?status=lost", adminTok.AccessToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = f.request(http.MethodPut, "/api/admin/orders/missing/status?status=shipped", adminTok.AccessToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
