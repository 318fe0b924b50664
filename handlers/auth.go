package handlers

import (
	"net/http"

	"fixly/middleware"
	"fixly/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates an account and returns its first token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", input.Email), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// LoginHandler verifies credentials and returns a token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", input.Email), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// MeHandler returns the authenticated account.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	logger := getLogger(c)

	u, err := h.Service.GetByID(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		logger.Warn("Get current user error", zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler applies profile changes for the caller, including
// the FCM device token push delivery depends on.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	u, err := h.Service.UpdateProfile(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		logger.Warn("Update profile error", zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
