package catalog

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-storefront/internal/api"
	"atelier-storefront/internal/backendtest"
	"atelier-storefront/internal/models"
)

func newFixture(t *testing.T) (*backendtest.Server, *httptest.Server, *Service) {
	t.Helper()
	backend := backendtest.New("test-secret")
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)
	client := api.New(ts.URL + "/api")
	return backend, ts, NewService(client)
}

func seedCatalog(backend *backendtest.Server) {
	backend.AddProduct(models.Product{Name: "Classic White Shirt", Price: 89, Category: "Shirts", Sizes: []string{"M"}, Colors: []string{"White"}, Featured: true})
	backend.AddProduct(models.Product{Name: "Essential Cotton Tee", Price: 45, Category: "T-Shirts", Sizes: []string{"M"}, Colors: []string{"Black"}, Featured: true})
	backend.AddProduct(models.Product{Name: "Linen Shirt", Price: 110, Category: "Shirts", Sizes: []string{"M"}, Colors: []string{"Beige"}})
}

func TestListUnfiltered(t *testing.T) {
	backend, _, svc := newFixture(t)
	seedCatalog(backend)

	products, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestFiltersCombineWithAND(t *testing.T) {
	backend, _, svc := newFixture(t)
	seedCatalog(backend)
	ctx := context.Background()

	byCategory, err := svc.List(ctx, Filter{Category: "Shirts"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	featured := true
	featuredShirts, err := svc.List(ctx, Filter{Category: "Shirts", Featured: &featured})
	require.NoError(t, err)
	require.Len(t, featuredShirts, 1)
	assert.Equal(t, "Classic White Shirt", featuredShirts[0].Name)

	searched, err := svc.List(ctx, Filter{Search: "shirt", Category: "Shirts"})
	require.NoError(t, err)
	assert.Len(t, searched, 2, "search is case-insensitive substring")

	none, err := svc.List(ctx, Filter{Search: "tee", Category: "Shirts"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPriceRangeFilter(t *testing.T) {
	backend, _, svc := newFixture(t)
	seedCatalog(backend)

	min, max := 50.0, 100.0
	products, err := svc.List(context.Background(), Filter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Classic White Shirt", products[0].Name)
}

func TestFeaturedShortcut(t *testing.T) {
	backend, _, svc := newFixture(t)
	seedCatalog(backend)

	products, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCategories(t *testing.T) {
	backend, _, svc := newFixture(t)
	seedCatalog(backend)

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Shirts", "T-Shirts"}, cats)
}

func TestGetUnknownProduct(t *testing.T) {
	_, _, svc := newFixture(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestFailedRefreshKeepsLastGoodListing(t *testing.T) {
	backend, ts, svc := newFixture(t)
	seedCatalog(backend)

	products, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, products, 3)

	ts.Close()
	_, err = svc.List(context.Background(), Filter{})
	require.Error(t, err)
	assert.Len(t, svc.LastListing(), 3, "last-good listing survives a failed refresh")
}
