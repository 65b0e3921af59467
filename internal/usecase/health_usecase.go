package usecase

import "context"

// CacheProbe reports whether the shared cache backend is reachable
type CacheProbe interface {
	Available(ctx context.Context) bool
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	cache         CacheProbe
	relayEndpoint string
}

func NewHealthUsecase(cache CacheProbe, relayEndpoint string) HealthUsecase {
	return &healthUsecase{
		cache:         cache,
		relayEndpoint: relayEndpoint,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status": "ok",
		"cache":  "memory",
		"relay":  "configured",
	}
	if u.cache != nil && u.cache.Available(ctx) {
		result["cache"] = "redis"
	}
	if u.relayEndpoint == "" {
		result["relay"] = "missing"
	}
	return result
}
