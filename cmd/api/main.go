package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/getawayhq/getaway-platform/internal/api/router"
	"github.com/getawayhq/getaway-platform/internal/bookings"
	"github.com/getawayhq/getaway-platform/internal/catalog"
	appconfig "github.com/getawayhq/getaway-platform/internal/config"
	"github.com/getawayhq/getaway-platform/internal/observability/metrics"
	"github.com/getawayhq/getaway-platform/internal/web"
	"github.com/getawayhq/getaway-platform/pkg/logging"
)

func main() {
	// Load configuration (.env is optional, local development only)
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	var logger *logging.Logger
	if cfg.IsDevelopment() {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting getaway-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Booking store: Postgres when configured, in-memory otherwise.
	var store bookings.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = bookings.NewPostgresStore(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory booking store")
		store = bookings.NewInMemoryStore()
	}

	// Availability cache is optional; the flow works without Redis.
	cache := bookings.NewCache(buildRedisClient(ctx, cfg, logger), cfg.BookingsCacheTTL)

	bookingMetrics := metrics.NewBookingMetrics(nil)

	// Initialize repositories and services
	catalogRepo := catalog.NewInMemoryRepository()
	bookingsSvc := bookings.NewService(store, cache, bookingMetrics, logger)

	// Initialize handlers
	catalogHandler := catalog.NewHandler(catalogRepo, logger)
	bookingsHandler := bookings.NewHandler(bookingsSvc, catalogRepo, cfg.BookingUserID, logger)
	webHandler := web.NewHandler(catalogRepo, bookingsSvc, cfg.BookingUserID, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		CatalogHandler:     catalogHandler,
		BookingsHandler:    bookingsHandler,
		WebHandler:         webHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		BookingRatePerSec:  cfg.BookingRatePerSec,
		BookingRateBurst:   cfg.BookingRateBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildRedisClient returns a verified Redis client, or nil when Redis is not
// configured or unreachable; the service degrades to uncached reads.
func buildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}
