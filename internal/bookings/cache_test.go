package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, time.Minute), mr
}

func TestCacheMissThenHit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok, "expected cold cache miss")

	list := []Booking{mkBooking("2024-05-10", "2024-05-14")}
	require.NoError(t, cache.Set(ctx, 1, list))

	got, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, "2024-05-10", got[0].StartDate.String())
	require.Equal(t, "2024-05-14", got[0].EndDate.String())
}

func TestCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, []Booking{mkBooking("2024-05-10", "2024-05-14")}))
	require.NoError(t, cache.Invalidate(ctx, 1))

	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok, "expected miss after invalidation")
}

func TestCacheTTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, []Booking{mkBooking("2024-05-10", "2024-05-14")}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok, "expected miss after TTL expiry")
}

func TestCacheKeysScopedByProperty(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, []Booking{mkBooking("2024-05-10", "2024-05-14")}))

	_, ok, err := cache.Get(ctx, 2)
	require.NoError(t, err)
	require.False(t, ok, "expected miss for different property")
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, cache.Set(ctx, 1, nil))
	require.NoError(t, cache.Invalidate(ctx, 1))

	require.Nil(t, NewCache(nil, time.Minute))
}
