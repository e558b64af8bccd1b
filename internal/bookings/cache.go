package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps per-property booking lists in Redis so the calendar does not
// hit the store on every page view. A nil *Cache disables caching entirely.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a cache with the given TTL. Returns nil when the Redis
// client is absent so callers can wire it unconditionally.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) key(propertyID int64) string {
	return fmt.Sprintf("bookings:property:%d", propertyID)
}

// Get returns the cached booking list and whether it was present.
func (c *Cache) Get(ctx context.Context, propertyID int64) ([]Booking, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	data, err := c.redis.Get(ctx, c.key(propertyID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("bookings: cache get: %w", err)
	}

	var out []Booking
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, fmt.Errorf("bookings: cache unmarshal: %w", err)
	}
	return out, true, nil
}

// Set stores the booking list for a property.
func (c *Cache) Set(ctx context.Context, propertyID int64, list []Booking) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("bookings: cache marshal: %w", err)
	}
	if err := c.redis.Set(ctx, c.key(propertyID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("bookings: cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list so the next read observes fresh rows.
func (c *Cache) Invalidate(ctx context.Context, propertyID int64) error {
	if c == nil {
		return nil
	}
	if err := c.redis.Del(ctx, c.key(propertyID)).Err(); err != nil {
		return fmt.Errorf("bookings: cache invalidate: %w", err)
	}
	return nil
}
