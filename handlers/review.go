package handlers

import (
	"net/http"

	"fixly/middleware"
	"fixly/models"
	"fixly/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes review submission, listing and responses.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler builds a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// CreateReviewHandler attaches a review to a completed booking.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	detail, err := h.Service.AttachReview(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		logger.Warn("Create review error", zap.String("bookingId", input.BookingID), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// ProviderReviewsHandler lists one provider's reviews, newest first.
func (h *ReviewHandler) ProviderReviewsHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID := c.Param("providerId")

	details, err := h.Service.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Get reviews error", zap.String("providerId", providerID), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// RespondHandler attaches the owning provider's response to a review.
func (h *ReviewHandler) RespondHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input models.ReviewResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	detail, err := h.Service.Respond(c.Request.Context(), middleware.ActorID(c), id, input.Comment)
	if err != nil {
		logger.Warn("Review response error", zap.String("id", id), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
