package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/backendtest"
	"atelier-storefront/internal/cart"
	"atelier-storefront/internal/checkout"
	"atelier-storefront/internal/models"
	"atelier-storefront/internal/session"
)

type countingTransport struct {
	base  http.RoundTripper
	calls int64
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&t.calls, 1)
	return t.base.RoundTrip(req)
}

type fixture struct {
	backend   *backendtest.Server
	ts        *httptest.Server
	transport *countingTransport
	admin     *Service
	client    *api.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backend := backendtest.New("test-secret")
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)

	transport := &countingTransport{base: http.DefaultTransport}
	client := api.New(ts.URL+"/api", api.WithHTTPClient(&http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}))

	_, err := backend.CreateAdmin("admin", "admin@example.com", "admin123")
	require.NoError(t, err)
	sess := session.New(client)
	_, err = sess.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)

	return &fixture{
		backend:   backend,
		ts:        ts,
		transport: transport,
		admin:     NewService(client),
		client:    client,
	}
}

func productRequest() models.ProductRequest {
	return models.ProductRequest{
		Name:     "Structured Wool Coat",
		Price:    295.00,
		Category: "Outerwear",
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Camel", "Black"},
		Stock:    30,
	}
}

// placeOrder drives a separate shopper session through checkout so the
// admin has an order to manage. The admin credential is restored after.
func (f *fixture) placeOrder(t *testing.T, productID string) models.Order {
	t.Helper()
	adminToken := f.client.Token()

	sess := session.New(f.client)
	_, err := sess.Register(context.Background(), "shopper", "shopper@example.com", "password1")
	require.NoError(t, err)

	mgr := cart.NewManager(f.client)
	_, err = mgr.Add(context.Background(), productID, 1, "M", "Black")
	require.NoError(t, err)

	co := checkout.NewService(f.client, mgr)
	order, err := co.Submit(context.Background(), models.ShippingAddress{
		FullName:     "Sam Shopper",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "United States",
		Phone:        "555-0100",
	})
	require.NoError(t, err)

	f.client.SetToken(adminToken)
	return order
}

func TestProductCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.admin.CreateProduct(ctx, productRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 295.00, created.Price)

	newPrice := 250.00
	updated, err := f.admin.UpdateProduct(ctx, created.ID, models.ProductUpdateRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 250.00, updated.Price)
	assert.Equal(t, created.Name, updated.Name, "unset fields stay untouched")

	require.NoError(t, f.admin.DeleteProduct(ctx, created.ID))
	err = f.admin.DeleteProduct(ctx, created.ID)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*models.ProductRequest)
	}{
		{"name", func(r *models.ProductRequest) { r.Name = "" }},
		{"price", func(r *models.ProductRequest) { r.Price = 0 }},
		{"sizes", func(r *models.ProductRequest) { r.Sizes = nil }},
		{"colors", func(r *models.ProductRequest) { r.Colors = nil }},
		{"stock", func(r *models.ProductRequest) { r.Stock = -1 }},
	}

	for _, tc := range cases {
		req := productRequest()
		tc.mutate(&req)
		before := atomic.LoadInt64(&f.transport.calls)
		_, err := f.admin.CreateProduct(ctx, req)
		var valErr *api.ValidationError
		require.ErrorAs(t, err, &valErr, "field %s", tc.field)
		assert.Equal(t, tc.field, valErr.Field)
		assert.Equal(t, before, atomic.LoadInt64(&f.transport.calls))
	}
}

func TestSetOrderStatusRefetchesList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.admin.CreateProduct(ctx, productRequest())
	require.NoError(t, err)
	order := f.placeOrder(t, product.ID)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	require.NoError(t, f.admin.SetOrderStatus(ctx, order.ID, models.OrderStatusShipped))

	orders := f.admin.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusShipped, orders[0].Status)
	// Everything besides status is unchanged.
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, order.Total, orders[0].Total)
	assert.Equal(t, order.Items, orders[0].Items)
	assert.Equal(t, order.ShippingAddress, orders[0].ShippingAddress)
}

func TestStatusTransitionsAreUnconstrained(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.admin.CreateProduct(ctx, productRequest())
	require.NoError(t, err)
	order := f.placeOrder(t, product.ID)

	// Any-to-any is allowed, including moving a delivered order back.
	for _, status := range []string{
		models.OrderStatusDelivered,
		models.OrderStatusConfirmed,
		models.OrderStatusCancelled,
		models.OrderStatusProcessing,
	} {
		require.NoError(t, f.admin.SetOrderStatus(ctx, order.ID, status))
		require.Len(t, f.admin.Orders(), 1)
		assert.Equal(t, status, f.admin.Orders()[0].Status)
	}
}

func TestSetOrderStatusRejectsUnknownValue(t *testing.T) {
	f := newFixture(t)

	before := atomic.LoadInt64(&f.transport.calls)
	err := f.admin.SetOrderStatus(context.Background(), "some-order", "returned")
	var valErr *api.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "status", valErr.Field)
	assert.Equal(t, before, atomic.LoadInt64(&f.transport.calls))
}

func TestOrderSnapshotSurvivesProductEdits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := f.admin.CreateProduct(ctx, productRequest())
	require.NoError(t, err)
	order := f.placeOrder(t, product.ID)

	newName := "Renamed Coat"
	newPrice := 999.00
	_, err = f.admin.UpdateProduct(ctx, product.ID, models.ProductUpdateRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)

	orders, err := f.admin.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Structured Wool Coat", orders[0].Items[0].ProductName)
	assert.Equal(t, 295.00, orders[0].Items[0].Price)
	assert.Equal(t, order.Total, orders[0].Total)
}

func TestNonAdminIsRejected(t *testing.T) {
	f := newFixture(t)

	sess := session.New(f.client)
	_, err := sess.Register(context.Background(), "plain", "plain@example.com", "password1")
	require.NoError(t, err)

	_, err = f.admin.CreateProduct(context.Background(), productRequest())
	assert.ErrorIs(t, err, api.ErrUnauthenticated)
}
