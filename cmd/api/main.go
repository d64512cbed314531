package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sofa-shop/internal/auth"
	"sofa-shop/internal/config"
	"sofa-shop/internal/database"
	"sofa-shop/internal/handler"
	"sofa-shop/internal/mailer"
	"sofa-shop/internal/repository"
	"sofa-shop/internal/router"
	"sofa-shop/internal/service"
	"sofa-shop/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting sofa-shop API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	adminRepo := repository.NewAdminRepository(pool, logger)

	// Initialize session tokens and transactional mail
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.SessionHours)*time.Hour)
	mail := mailer.New(cfg.SMTP, cfg.Shop, logger)

	// Initialize the image store with local passthrough fallback
	var images storage.ImageStore
	if cfg.S3.Enabled {
		images, err = storage.NewS3ImageStore(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 image store, image uploads disabled")
			images = storage.NewDisabledImageStore()
		}
	} else {
		images = storage.NewDisabledImageStore()
		logger.Info().Msg("image uploads disabled (S3 disabled)")
	}

	// Initialize services
	orderService := service.NewOrderService(orderRepo, mail, logger)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, reviewRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, logger)
	authService := service.NewAuthService(adminRepo, tokens, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Order:   handler.NewOrderHandler(orderService, logger),
		Catalog: handler.NewCatalogHandler(catalogService, images, logger),
		Review:  handler.NewReviewHandler(reviewService, logger),
		Admin:   handler.NewAdminHandler(authService, logger),
		Contact: handler.NewContactHandler(mail, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, authService, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
