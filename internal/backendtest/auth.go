package backendtest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-storefront/internal/models"
)

var errDuplicateAccount = errors.New("email or username already registered")

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if _, exists := s.store.userByEmail(req.Email); exists {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to hash password"})
		return
	}

	rec, ok := s.store.createUser(req.Username, req.Email, hash, false)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already taken"})
		return
	}

	s.issueToken(c, rec)
}

func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rec, ok := s.store.userByEmail(req.Email)
	if !ok || !checkPassword(req.Password, rec.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
		return
	}

	s.issueToken(c, rec)
}

func (s *Server) issueToken(c *gin.Context, rec *userRecord) {
	token, err := mintToken(s.secret, rec.ID, rec.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        rec.User,
	})
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, contextUser(c).User)
}
