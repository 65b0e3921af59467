package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/cache"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apiclient"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/relay"
	"portfolio-backend/pkg/validation"
)

// @title           Portfolio Site Gateway API
// @version         1.0
// @description     Contact relay and testimonials for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio gateway", "port", cfg.Port, "api_base", cfg.APIBaseURL)

	// 3. Setup Redis (optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - using in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 4. Setup Clients
	validator := validation.New()
	relayClient := relay.New(cfg.ContactRelayURL, relay.WithTimeout(cfg.RelayTimeout))
	if cfg.ContactRelayURL == "" {
		logger.Log.Warn("Contact relay not configured - contact form will be unavailable")
	}

	testimonialSource := apiclient.NewTestimonialClient(cfg.TestimonialsBaseURL(), &http.Client{Timeout: 10 * time.Second})
	logger.Log.Info("Testimonials upstream", "url", cfg.TestimonialsBaseURL())
	testimonialCache := cache.NewTestimonialCache(redis.Client(), cfg.TestimonialsCacheTTL)

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(validator, relayClient)
	testimonialUC := usecase.NewTestimonialUsecase(testimonialSource, testimonialCache, validator, domain.DefaultTestimonials)
	healthUC := usecase.NewHealthUsecase(testimonialCache, cfg.ContactRelayURL)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		TestimonialUC: testimonialUC,
		HealthUC:      healthUC,
		Redis:         redis.Client(),
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
