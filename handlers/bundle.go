// File: fixly/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	AuthCache *redis.Client

	// Auth and account endpoints.
	RegisterHandler          gin.HandlerFunc
	LoginHandler             gin.HandlerFunc
	MeHandler                gin.HandlerFunc
	UpdateUserProfileHandler gin.HandlerFunc

	// Service catalog endpoints.
	ListServicesHandler   gin.HandlerFunc
	ListCategoriesHandler gin.HandlerFunc
	GetServiceHandler     gin.HandlerFunc
	CreateServiceHandler  gin.HandlerFunc

	// Provider endpoints.
	SearchProvidersHandler gin.HandlerFunc
	GetProviderHandler     gin.HandlerFunc
	UpsertProfileHandler   gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	MyBookingsHandler    gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	UpdateStatusHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Review endpoints.
	CreateReviewHandler    gin.HandlerFunc
	ProviderReviewsHandler gin.HandlerFunc
	RespondToReviewHandler gin.HandlerFunc
}
