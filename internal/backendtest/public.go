package backendtest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

func (s *Server) listProducts(c *gin.Context) {
	products := s.store.listProducts()
	filtered := make([]models.Product, 0, len(products))

	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	var featured *bool
	if v := c.Query("featured"); v != "" {
		f, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid featured value"})
			return
		}
		featured = &f
	}
	minPrice, ok := parsePriceParam(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := parsePriceParam(c, "max_price")
	if !ok {
		return
	}

	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if featured != nil && p.Featured != *featured {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if minPrice != nil && p.Price < *minPrice {
			continue
		}
		if maxPrice != nil && p.Price > *maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, filtered)
}

func parsePriceParam(c *gin.Context, name string) (*float64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid " + name + " value"})
		return nil, false
	}
	return &f, true
}

func (s *Server) listCategories(c *gin.Context) {
	cats := s.store.categories()
	if cats == nil {
		cats = []string{}
	}
	c.JSON(http.StatusOK, models.CategoriesResponse{Categories: cats})
}

func (s *Server) getProduct(c *gin.Context) {
	product, ok := s.store.product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
