package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app_service "base-wrapped-api/internal/application/service"
	"base-wrapped-api/internal/controller"
	domain_service "base-wrapped-api/internal/domain/service"
	"base-wrapped-api/internal/infrastructure/config"
	"base-wrapped-api/internal/infrastructure/enriched"
	"base-wrapped-api/internal/infrastructure/explorer"
	"base-wrapped-api/internal/infrastructure/logger"
	"base-wrapped-api/internal/infrastructure/reputation"

	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log, err := logger.NewLogger(cfg.App.LogLevel)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Create FX application
	app := fx.New(
		// Provide dependencies
		fx.Supply(cfg),
		fx.Supply(log),

		// Infrastructure providers
		fx.Provide(
			explorer.NewClient,
			enriched.NewClient,
			reputation.NewClient,
		),

		// Domain services
		fx.Provide(
			domain_service.NewPersonalityClassifier,
		),

		// Application providers
		fx.Provide(
			app_service.NewWrappedService,
		),

		// HTTP layer
		fx.Provide(
			controller.NewWrappedHandler,
			controller.NewRouter,
		),

		// Lifecycle hooks
		fx.Invoke(startHTTPServer),

		// Configure logging
		fx.WithLogger(func() fxevent.Logger {
			return fxevent.NopLogger
		}),
	)

	// Start the application
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Error("Failed to start application", zap.Error(err))
		os.Exit(1)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application gracefully", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped successfully")
}

// startHTTPServer starts the wrapped API server
func startHTTPServer(
	lifecycle fx.Lifecycle,
	router *mux.Router,
	cfg *config.Config,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting HTTP server...", zap.Int("port", cfg.App.HTTPPort))

			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server error", zap.Error(err))
				}
			}()

			log.Info("HTTP server started successfully")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
