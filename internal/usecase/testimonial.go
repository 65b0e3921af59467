package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	"golang.org/x/sync/singleflight"
)

type testimonialUsecase struct {
	source    domain.TestimonialSource
	cache     domain.TestimonialCache
	validator domain.TestimonialValidator
	fallback  []domain.Testimonial
	group     singleflight.Group
}

// NewTestimonialUsecase wires the testimonials flow. source may be nil when no
// upstream is configured, in which case List serves fallback and Add is refused.
func NewTestimonialUsecase(source domain.TestimonialSource, cache domain.TestimonialCache, validator domain.TestimonialValidator, fallback []domain.Testimonial) domain.TestimonialUsecase {
	return &testimonialUsecase{
		source:    source,
		cache:     cache,
		validator: validator,
		fallback:  fallback,
	}
}

// List returns upstream testimonials, or the built-in set when there are none
func (uc *testimonialUsecase) List(ctx context.Context) []domain.Testimonial {
	if uc.source == nil {
		return uc.fallback
	}

	if items, ok := uc.cache.Get(ctx); ok {
		return uc.orFallback(items)
	}

	// Concurrent misses share one upstream call, detached from whichever
	// caller happened to start it
	shared := context.WithoutCancel(ctx)
	v, err, _ := uc.group.Do("testimonials", func() (interface{}, error) {
		items, err := uc.source.Fetch(shared)
		if err != nil {
			return nil, err
		}
		if err := uc.cache.Set(shared, items); err != nil {
			logger.Log.Warn("Failed to cache testimonials", "error", err)
		}
		return items, nil
	})
	if err != nil {
		// Failures are not cached; the next visitor retries the upstream
		logger.Log.Warn("Testimonials upstream failed, serving built-in set", "error", err)
		return uc.fallback
	}

	items, _ := v.([]domain.Testimonial)
	return uc.orFallback(items)
}

func (uc *testimonialUsecase) orFallback(items []domain.Testimonial) []domain.Testimonial {
	if len(items) == 0 {
		return uc.fallback
	}
	return items
}

// Add validates and forwards a testimonial, then drops the cached list
func (uc *testimonialUsecase) Add(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error) {
	accepted, err := uc.validator.ValidateTestimonial(t)
	if err != nil {
		return nil, err
	}

	if uc.source == nil {
		return nil, domain.ErrUpstreamNotConfigured
	}

	created, err := uc.source.Create(ctx, accepted)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		logger.Log.Warn("Failed to invalidate testimonial cache", "error", err)
	}
	return created, nil
}
