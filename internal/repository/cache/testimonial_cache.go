package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const testimonialsKey = "portfolio:testimonials"

// TestimonialCache keeps the last good testimonial list in Redis when a client
// is available and in process memory otherwise (or when Redis errors).
type TestimonialCache struct {
	client *goredis.Client
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	mem       []domain.Testimonial
	memExpiry time.Time
}

// NewTestimonialCache returns a cache; client may be nil
func NewTestimonialCache(client *goredis.Client, ttl time.Duration) *TestimonialCache {
	return &TestimonialCache{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *TestimonialCache) Get(ctx context.Context) ([]domain.Testimonial, bool) {
	if c.client != nil {
		items, ok, err := c.getRedis(ctx)
		if err == nil {
			return items, ok
		}
		logger.Log.Warn("Testimonial cache read failed, using memory", "error", err)
	}
	return c.getMemory()
}

func (c *TestimonialCache) Set(ctx context.Context, items []domain.Testimonial) error {
	c.setMemory(items)

	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode testimonials: %w", err)
	}
	if err := c.client.Set(ctx, testimonialsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache write failed: %w", err)
	}
	return nil
}

func (c *TestimonialCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.mem = nil
	c.memExpiry = time.Time{}
	c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, testimonialsKey).Err(); err != nil {
		return fmt.Errorf("redis cache invalidate failed: %w", err)
	}
	return nil
}

// Available reports whether the Redis backend answers
func (c *TestimonialCache) Available(ctx context.Context) bool {
	if c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}

func (c *TestimonialCache) getRedis(ctx context.Context) ([]domain.Testimonial, bool, error) {
	data, err := c.client.Get(ctx, testimonialsKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []domain.Testimonial
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return items, true, nil
}

func (c *TestimonialCache) getMemory() ([]domain.Testimonial, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.mem == nil || c.now().After(c.memExpiry) {
		return nil, false
	}
	return append([]domain.Testimonial(nil), c.mem...), true
}

func (c *TestimonialCache) setMemory(items []domain.Testimonial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem = append([]domain.Testimonial{}, items...)
	c.memExpiry = c.now().Add(c.ttl)
}
