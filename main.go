// File: fixly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixly/config"
	"fixly/cron"
	"fixly/database"
	bookingRepoPkg "fixly/database/repository/booking"
	providerRepoPkg "fixly/database/repository/provider"
	reviewRepoPkg "fixly/database/repository/review"
	serviceRepoPkg "fixly/database/repository/service"
	userRepoPkg "fixly/database/repository/user"
	"fixly/handlers"
	"fixly/middleware"
	"fixly/routes"
	"fixly/services/booking"
	"fixly/services/notification"
	"fixly/services/provider"
	"fixly/services/review"
	"fixly/services/tasks"
	"fixly/services/user"
	"fixly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitEventsClient()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()

	// Notification channels: realtime events over redis pub/sub, mirrored
	// to FCM push for users with a registered device.
	fcmResolver := func(ctx context.Context, recipientID string) (string, error) {
		u, err := userRepo.GetByID(recipientID)
		if err != nil {
			// Provider ids are not user ids; no token is not an error.
			return "", nil
		}
		return u.FCMToken, nil
	}
	notifier := notification.NewFanoutChannel(
		notification.NewRedisChannel(utils.GetEventsClient()),
		notification.NewFCMChannel(utils.FCMClient, fcmResolver),
	)

	// Reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(notifier)

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	providerService := &provider.DefaultProviderService{
		Repo:     provRepo,
		UserRepo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookRepo,
		ProviderRepo: provRepo,
		UserRepo:     userRepo,
		ServiceRepo:  serviceRepo,
		Notifier:     notifier,
		Reminders:    tasks.NewScheduler(asynqClient),
	}
	reviewService := &review.DefaultReviewService{
		Repo:         revRepo,
		BookingRepo:  bookRepo,
		ProviderRepo: provRepo,
		UserRepo:     userRepo,
	}

	// Handlers.
	authHandler := handlers.NewAuthHandler(userService)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	providerHandler := handlers.NewProviderHandler(providerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthCache: utils.GetAuthCacheClient(),

		RegisterHandler:          authHandler.RegisterHandler,
		LoginHandler:             authHandler.LoginHandler,
		MeHandler:                authHandler.MeHandler,
		UpdateUserProfileHandler: authHandler.UpdateProfileHandler,

		ListServicesHandler:   serviceHandler.ListServicesHandler,
		ListCategoriesHandler: serviceHandler.ListCategoriesHandler,
		GetServiceHandler:     serviceHandler.GetServiceHandler,
		CreateServiceHandler:  serviceHandler.CreateServiceHandler,

		SearchProvidersHandler: providerHandler.SearchProvidersHandler,
		GetProviderHandler:     providerHandler.GetProviderHandler,
		UpsertProfileHandler:   providerHandler.UpsertProfileHandler,

		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		MyBookingsHandler:    bookingHandler.MyBookingsHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		UpdateStatusHandler:  bookingHandler.UpdateStatusHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,

		CreateReviewHandler:    reviewHandler.CreateReviewHandler,
		ProviderReviewsHandler: reviewHandler.ProviderReviewsHandler,
		RespondToReviewHandler: reviewHandler.RespondHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
