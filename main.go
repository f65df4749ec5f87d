// File: quotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"quotify/config"
	"quotify/cron"
	"quotify/database"
	addonRepo "quotify/database/repository/addon"
	bookingRepoPkg "quotify/database/repository/booking"
	catalogRepoPkg "quotify/database/repository/catalog"
	itemRepoPkg "quotify/database/repository/item"
	"quotify/handlers"
	"quotify/routes"
	"quotify/services/booking"
	"quotify/services/catalog"
	"quotify/services/quote"
	"quotify/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	itemRepo := itemRepoPkg.NewMongoItemRepo()
	addRepo := addonRepo.NewMongoAddonRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catRepo,
		Items:  itemRepo,
		Addons: addRepo,
	}
	quoteEngine := &quote.DefaultQuoteEngine{
		Addons:  addRepo,
		Catalog: catalogService,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:    bookRepo,
		Catalog: catalogService,
		Quotes:  quoteEngine,
		Cache:   utils.GetCacheClient(),
		Tasks:   cron.NewTaskClient(),
	}

	// Background workers and monitors.
	cron.InitCompletionWorker(bookRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	handlerBundle := handlers.NewHandlerBundle(catalogService, quoteEngine, bookingService)
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
