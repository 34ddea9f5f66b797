package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skycast/api/internal/api"
	"github.com/skycast/api/internal/config"
	"github.com/skycast/api/internal/database"
	"github.com/skycast/api/internal/logger"
	"github.com/skycast/api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	for _, warning := range cfg.Warnings {
		zapLogger.Warn(warning)
	}

	// Initialize database with automigrations enabled
	db, err := database.NewConnection(cfg.Database, true, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize services
	userService := services.NewUserService(db, zapLogger)
	authService := services.NewAuthService(cfg.JWT.Secret, cfg.Security.BCryptCost, zapLogger)
	tripService := services.NewTripService(db, zapLogger)
	weatherService := services.NewWeatherService(cfg.Weather.APIKey, zapLogger)
	routeService := services.NewRouteService(cfg.Route.APIKey, weatherService, zapLogger)
	historyService := services.NewHistoryService(db, zapLogger)
	suggestService := services.NewSuggestService()

	// Initialize API server
	server := api.NewServer(cfg, zapLogger,
		userService, authService, tripService,
		weatherService, routeService, historyService, suggestService,
		db)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
