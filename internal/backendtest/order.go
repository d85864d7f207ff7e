package backendtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

func (s *Server) createOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user := contextUser(c)
	order, ok := s.store.placeOrder(user.ID, req.ShippingAddress)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cart is empty"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders := s.store.ordersForUser(contextUser(c).ID)
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, ok := s.store.orderForUser(contextUser(c).ID, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}
