package handlers

import (
	"net/http"

	"fixly/middleware"
	"fixly/models"
	"fixly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler records a new pending booking for the caller.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	detail, err := h.Service.Create(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		logger.Error("Create booking error", zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// MyBookingsHandler lists the caller's bookings scoped by role.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	details, err := h.Service.ListMine(c.Request.Context(), middleware.ActorID(c), middleware.ActorRole(c))
	if err != nil {
		logger.Error("Get bookings error", zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetBookingHandler returns one booking the caller is related to.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	detail, err := h.Service.GetOne(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		logger.Warn("Get booking error", zap.String("id", id), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateStatusHandler applies one lifecycle transition.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input models.TransitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	detail, err := h.Service.Transition(c.Request.Context(), id, middleware.ActorID(c), input.Status)
	if err != nil {
		logger.Warn("Update booking status error",
			zap.String("id", id), zap.String("target", input.Status), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CancelBookingHandler cancels a pending or confirmed booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	detail, err := h.Service.Cancel(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		logger.Warn("Cancel booking error", zap.String("id", id), zap.Error(err))
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
