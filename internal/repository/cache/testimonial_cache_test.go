package cache

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c := NewTestimonialCache(nil, time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, domain.DefaultTestimonials))
	items, ok := c.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.DefaultTestimonials, items)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestMemoryCacheStoresEmptyList(t *testing.T) {
	ctx := context.Background()
	c := NewTestimonialCache(nil, time.Minute)

	require.NoError(t, c.Set(ctx, nil))
	items, ok := c.Get(ctx)
	assert.True(t, ok)
	assert.Empty(t, items)

	require.NoError(t, c.Invalidate(ctx))
	_, ok = c.Get(ctx)
	assert.False(t, ok)
	assert.False(t, c.Available(ctx))
}

func TestUnreachableRedisFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewTestimonialCache(client, time.Minute)

	err := c.Set(ctx, domain.DefaultTestimonials[:2])
	assert.Error(t, err, "redis write failure is reported")

	items, ok := c.Get(ctx)
	assert.True(t, ok)
	assert.Len(t, items, 2)
	assert.False(t, c.Available(ctx))
}
