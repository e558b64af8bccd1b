package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/getawayhq/getaway-platform/internal/observability/metrics"
	"github.com/getawayhq/getaway-platform/pkg/logging"
)

var bookingsTracer = otel.Tracer("getaway.internal.bookings")

// Service owns reads and writes of reservations: listing through the cache
// and submitting new bookings against the store.
//
// There is deliberately no overlap check at write time. The calendar prevents
// picking blocked dates, but two sessions that read the same state can both
// insert overlapping rows; the table carries no uniqueness constraint.
type Service struct {
	store   Store
	cache   *Cache
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewService constructs a bookings service. Cache and metrics may be nil.
func NewService(store Store, cache *Cache, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if store == nil {
		panic("bookings: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, cache: cache, metrics: m, logger: logger}
}

// ListBookings returns the reservations for a property, read through the
// cache when one is configured.
func (s *Service) ListBookings(ctx context.Context, propertyID int64) ([]Booking, error) {
	if cached, ok, err := s.cache.Get(ctx, propertyID); err != nil {
		s.logger.Warn("bookings cache read failed", "property_id", propertyID, "error", err)
	} else if ok {
		s.metrics.ObserveCacheLookup(true)
		return cached, nil
	} else {
		s.metrics.ObserveCacheLookup(false)
	}

	start := time.Now()
	list, err := s.store.ListByProperty(ctx, propertyID)
	s.metrics.ObserveStoreLatency("list", time.Since(start).Seconds())
	if err != nil {
		s.metrics.ObserveFailure("store_read")
		return nil, err
	}

	if err := s.cache.Set(ctx, propertyID, list); err != nil {
		s.logger.Warn("bookings cache write failed", "property_id", propertyID, "error", err)
	}
	return list, nil
}

// Submit validates a completed selection and persists it as a new booking.
// On success the property's bookings are re-fetched before returning, so the
// caller observes the newly blocked range as part of settlement. On failure
// nothing is written and the caller's selection should stay intact for a
// manual retry.
func (s *Service) Submit(ctx context.Context, propertyID int64, userID string, sel Selection) (*Booking, []Booking, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.submit")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("getaway.property_id", propertyID),
		attribute.String("getaway.user_id", userID),
	)

	if !sel.Complete() {
		s.metrics.ObserveFailure("validation")
		return nil, nil, ErrIncompleteRange
	}
	if !sel.Start.Before(*sel.End) {
		s.metrics.ObserveFailure("validation")
		return nil, nil, ErrInvertedRange
	}

	booking := &Booking{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		UserID:     userID,
		StartDate:  *sel.Start,
		EndDate:    *sel.End,
	}

	start := time.Now()
	err := s.store.Create(ctx, booking)
	s.metrics.ObserveStoreLatency("create", time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveFailure("store_write")
		s.logger.Error("booking write failed", "property_id", propertyID, "error", err)
		return nil, nil, fmt.Errorf("bookings: create: %w", err)
	}

	if err := s.cache.Invalidate(ctx, propertyID); err != nil {
		s.logger.Warn("bookings cache invalidation failed", "property_id", propertyID, "error", err)
	}

	s.metrics.ObserveCreated()
	s.logger.Info("booking created",
		"booking_id", booking.ID,
		"property_id", propertyID,
		"start_date", booking.StartDate.String(),
		"end_date", booking.EndDate.String(),
	)

	refreshed, err := s.ListBookings(ctx, propertyID)
	if err != nil {
		// The row is committed; settlement still happens, the caller just
		// works from a stale calendar until the next fetch.
		s.logger.Warn("post-submit refresh failed", "property_id", propertyID, "error", err)
		return booking, nil, nil
	}
	return booking, refreshed, nil
}
