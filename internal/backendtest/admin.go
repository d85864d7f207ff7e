package backendtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

func (s *Server) createProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	product := models.Product{
		ID:          newID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Featured:    req.Featured,
		CreatedAt:   nowStamp(),
	}
	s.store.addProduct(product)
	c.JSON(http.StatusOK, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	product, ok := s.store.product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}

	var req models.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}
	if req.Colors != nil {
		product.Colors = req.Colors
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	s.store.updateProduct(product)
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if !s.store.deleteProduct(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product deleted successfully"})
}

func (s *Server) listAllOrders(c *gin.Context) {
	orders := s.store.allOrders()
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
		return
	}
	if !s.store.setOrderStatus(c.Param("id"), status) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Order status updated to " + status})
}
