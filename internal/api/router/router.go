package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/getawayhq/getaway-platform/internal/bookings"
	"github.com/getawayhq/getaway-platform/internal/catalog"
	httpmiddleware "github.com/getawayhq/getaway-platform/internal/http/middleware"
	"github.com/getawayhq/getaway-platform/internal/web"
	"github.com/getawayhq/getaway-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	CatalogHandler     *catalog.Handler
	BookingsHandler    *bookings.Handler
	WebHandler         *web.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	BookingRatePerSec  float64
	BookingRateBurst   int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.BookingsHandler.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Server-rendered pages
	if cfg.WebHandler != nil {
		r.Get("/", cfg.WebHandler.Landing)
		r.Route("/stays/{propertyID}", func(r chi.Router) {
			r.Get("/", cfg.WebHandler.Detail)
			if cfg.BookingRatePerSec > 0 {
				r.With(httpmiddleware.RateLimit(cfg.BookingRatePerSec, cfg.BookingRateBurst)).Post("/reserve", cfg.WebHandler.Reserve)
			} else {
				r.Post("/reserve", cfg.WebHandler.Reserve)
			}
		})
	}

	// JSON API
	r.Route("/properties", func(r chi.Router) {
		r.Get("/", cfg.CatalogHandler.ListProperties)
		r.Route("/{propertyID}", func(r chi.Router) {
			r.Get("/", cfg.CatalogHandler.GetProperty)
			r.Get("/bookings", cfg.BookingsHandler.ListBookings)
			if cfg.BookingRatePerSec > 0 {
				r.With(httpmiddleware.RateLimit(cfg.BookingRatePerSec, cfg.BookingRateBurst)).Post("/bookings", cfg.BookingsHandler.CreateBooking)
			} else {
				r.Post("/bookings", cfg.BookingsHandler.CreateBooking)
			}
			r.Get("/availability", cfg.BookingsHandler.Availability)
			r.Get("/quote", cfg.BookingsHandler.Quote)
		})
	})

	return r
}
