package routes

import (
	"net/http"
	"time"

	"fixly/config"
	"fixly/handlers"
	"fixly/middleware"
	"fixly/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and current-account
// endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		protected.GET("/me", hb.MeHandler)
	}
}

// RegisterUserRoutes registers account profile management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		api.PUT("/profile", hb.UpdateUserProfileHandler)
	}
}

// RegisterServiceRoutes registers the public service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/categories", hb.ListCategoriesHandler)
		api.GET("/:id", hb.GetServiceHandler)

		// Catalog curation requires an admin actor.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache), middleware.RequireRole(models.RoleAdmin))
		protected.POST("", hb.CreateServiceHandler)
	}
}

// RegisterProviderRoutes registers provider discovery and profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/search", hb.SearchProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		protected.POST("/profile", hb.UpsertProfileHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		api.POST("", hb.CreateBookingHandler)
		api.GET("/my-bookings", hb.MyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateStatusHandler)
		api.PATCH("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterReviewRoutes registers review submission and listing endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/provider/:providerId", hb.ProviderReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		protected.POST("", hb.CreateReviewHandler)
		protected.PATCH("/:id/response", hb.RespondToReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": config.GetEnv(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.ClientURL, "http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}
