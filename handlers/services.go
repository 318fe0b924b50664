package handlers

import (
	"errors"
	"net/http"
	"time"

	serviceRepo "fixly/database/repository/service"
	"fixly/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceHandler exposes the public service catalog. The catalog is plain
// CRUD with no business rules, so it talks to the repository directly.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

// NewServiceHandler builds a ServiceHandler.
func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// ListServicesHandler returns the active catalog, optionally by category.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	var (
		services []models.Service
		err      error
	)
	if category := c.Query("category"); category != "" {
		services, err = h.Repo.ListByCategory(category)
	} else {
		services, err = h.Repo.ListActive()
	}
	if err != nil {
		logger.Error("Get services error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListCategoriesHandler returns the recognised catalog categories.
func (h *ServiceHandler) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceCategories)
}

// GetServiceHandler returns one catalog entry.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	service, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		logger.Error("Get service error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateServiceHandler adds a catalog entry. Admin only.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Category    string  `json:"category" binding:"required"`
		Icon        string  `json:"icon"`
		BasePrice   float64 `json:"basePrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown service category"})
		return
	}

	now := time.Now().UTC()
	service := &models.Service{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Icon:        input.Icon,
		BasePrice:   input.BasePrice,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Repo.Create(service); err != nil {
		logger.Error("Create service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, service)
}
