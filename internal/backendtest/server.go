// Package backendtest is an in-memory implementation of the storefront
// backend contract. The test suites run against it through httptest, and
// cmd/stubserver exposes it on a port for manual runs. Semantics mirror
// the production backend: merge-by-variant carts, server-computed totals,
// order snapshots, cart cleared on checkout.
package backendtest

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

// Server hosts the contract on a gin engine.
type Server struct {
	secret string
	store  *store
	engine *gin.Engine
}

// New builds a server with an empty store and the given JWT secret.
func New(secret string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		secret: secret,
		store:  newStore(),
		engine: gin.New(),
	}
	s.routes()
	return s
}

// Handler returns the http.Handler for httptest or http.Server use.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)
		api.GET("/auth/me", s.authRequired(), s.me)

		api.GET("/products", s.listProducts)
		api.GET("/products/categories", s.listCategories)
		api.GET("/products/:id", s.getProduct)

		api.POST("/seed", s.seed)

		cart := api.Group("/cart", s.authRequired())
		{
			cart.GET("", s.getCart)
			cart.POST("/items", s.addCartItem)
			cart.PUT("/items/:id", s.updateCartItem)
			cart.DELETE("/items/:id", s.removeCartItem)
			cart.DELETE("", s.clearCart)
		}

		orders := api.Group("/orders", s.authRequired())
		{
			orders.POST("", s.createOrder)
			orders.GET("", s.listOrders)
			orders.GET("/:id", s.getOrder)
		}

		admin := api.Group("/admin", s.adminRequired())
		{
			admin.POST("/products", s.createProduct)
			admin.PUT("/products/:id", s.updateProduct)
			admin.DELETE("/products/:id", s.deleteProduct)
			admin.GET("/orders", s.listAllOrders)
			admin.PUT("/orders/:id/status", s.updateOrderStatus)
		}
	}
}

// authRequired validates the bearer token and loads the account onto the
// request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.currentUser(c)
		if !ok {
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// adminRequired additionally rejects non-admin accounts with 403.
func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.currentUser(c)
		if !ok {
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Admin access required"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

func (s *Server) currentUser(c *gin.Context) (*userRecord, bool) {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return nil, false
	}
	userID, _, err := parseToken(s.secret, header[len(prefix):])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return nil, false
	}
	user, ok := s.store.userByID(userID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
		return nil, false
	}
	return user, true
}

func contextUser(c *gin.Context) *userRecord {
	return c.MustGet("user").(*userRecord)
}

// CreateAdmin registers an admin account directly in the store, the test
// counterpart of the operator's create-admin flow.
func (s *Server) CreateAdmin(username, email, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	rec, ok := s.store.createUser(username, email, hash, true)
	if !ok {
		return models.User{}, errDuplicateAccount
	}
	return rec.User, nil
}

// AddProduct inserts a product directly, bypassing the admin surface.
func (s *Server) AddProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt == "" {
		p.CreatedAt = nowStamp()
	}
	s.store.addProduct(p)
	return p
}
