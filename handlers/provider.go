package handlers

import (
	"net/http"
	"strconv"

	"fixly/middleware"
	"fixly/models"
	"fixly/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider discovery and profile management.
type ProviderHandler struct {
	Service provider.ProviderService
}

// NewProviderHandler builds a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// SearchProvidersHandler filters active providers by service and radius.
func (h *ProviderHandler) SearchProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	input := provider.SearchInput{ServiceID: c.Query("service")}
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid coordinates"})
			return
		}
		input.Lat, input.Lng = &lat, &lng
	}
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if radius, err := strconv.ParseFloat(radiusStr, 64); err == nil {
			input.RadiusMiles = radius
		}
	}

	results, err := h.Service.Search(c.Request.Context(), input)
	if err != nil {
		logger.Error("Search providers error", zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetProviderHandler returns one provider profile.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	detail, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Warn("Get provider error", zap.String("id", id), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpsertProfileHandler saves the caller's provider profile.
func (h *ProviderHandler) UpsertProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.ProviderProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	detail, created, err := h.Service.UpsertProfile(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		logger.Error("Create/Update provider error", zap.Error(err))
		serviceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, detail)
}
