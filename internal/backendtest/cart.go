package backendtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.cartSnapshot(contextUser(c).ID))
}

func (s *Server) addCartItem(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if _, ok := s.store.product(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}

	user := contextUser(c)
	s.store.addCartLine(user.ID, req.ProductID, req.Size, req.Color, req.Quantity)
	c.JSON(http.StatusOK, s.store.cartSnapshot(user.ID))
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req models.CartItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user := contextUser(c)
	if !s.store.updateCartLine(user.ID, c.Param("id"), req.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Cart item not found"})
		return
	}
	c.JSON(http.StatusOK, s.store.cartSnapshot(user.ID))
}

func (s *Server) removeCartItem(c *gin.Context) {
	user := contextUser(c)
	s.store.removeCartLine(user.ID, c.Param("id"))
	c.JSON(http.StatusOK, s.store.cartSnapshot(user.ID))
}

func (s *Server) clearCart(c *gin.Context) {
	user := contextUser(c)
	s.store.clearCart(user.ID)
	c.JSON(http.StatusOK, s.store.cartSnapshot(user.ID))
}
