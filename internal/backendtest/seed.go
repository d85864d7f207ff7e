package backendtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

// seedProducts is the demo boutique catalog.
var seedProducts = []models.Product{
	{
		Name:        "Classic White Shirt",
		Description: "A timeless white cotton shirt with a modern fit. Perfect for any occasion.",
		Price:       89.00,
		Category:    "Shirts",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"White", "Off-White"},
		ImageURL:    "https://images.unsplash.com/photo-1620799139652-715e4d5b232d",
		Stock:       50,
		Featured:    true,
	},
	{
		Name:        "Essential Cotton Tee",
		Description: "Premium organic cotton t-shirt with a relaxed silhouette.",
		Price:       45.00,
		Category:    "T-Shirts",
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Black", "White", "Gray", "Navy"},
		ImageURL:    "https://images.unsplash.com/photo-1564316800929-be17a69d6966",
		Stock:       100,
		Featured:    true,
	},
	{
		Name:        "Navy Polo",
		Description: "Classic polo shirt in premium pique cotton. Understated elegance.",
		Price:       65.00,
		Category:    "Polos",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Navy", "Black", "White"},
		ImageURL:    "https://images.unsplash.com/photo-1587375027707-6aeb5230fe3b",
		Stock:       75,
		Featured:    true,
	},
	{
		Name:        "Structured Wool Coat",
		Description: "Luxurious wool blend coat with clean lines and minimal details.",
		Price:       295.00,
		Category:    "Outerwear",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Camel", "Black", "Charcoal"},
		ImageURL:    "https://images.unsplash.com/photo-1539533378611-e1b0ae63fb19",
		Stock:       30,
		Featured:    false,
	},
	{
		Name:        "Tailored Trousers",
		Description: "High-waisted trousers with a straight leg. Refined simplicity.",
		Price:       120.00,
		Category:    "Trousers",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Black", "Navy", "Beige"},
		ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1",
		Stock:       60,
		Featured:    false,
	},
}

// Seed populates the demo catalog when it is empty; idempotent.
func (s *Server) Seed() int {
	if s.store.productCount() > 0 {
		return s.store.productCount()
	}
	for _, p := range seedProducts {
		s.AddProduct(p)
	}
	return s.store.productCount()
}

func (s *Server) seed(c *gin.Context) {
	if count := s.store.productCount(); count > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Database already seeded", "product_count": count})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded", "product_count": s.Seed()})
}
