package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is used when neither API_BASE_URL nor NEXT_PUBLIC_API_URL is set.
const DefaultAPIBaseURL = "http://localhost:5000"

type Config struct {
	Port     string
	LogLevel string
	// Backend base URL used by the contact and testimonials clients
	APIBaseURL string
	// Third-party form-relay endpoint the gateway forwards contact submissions to
	ContactRelayURL string
	// Zero keeps the platform default (no client-side timeout)
	RelayTimeout time.Duration
	// Overrides APIBaseURL for the testimonials upstream
	TestimonialsUpstreamURL string
	TestimonialsCacheTTL    time.Duration
	// Comma-separated list of origins allowed by CORS
	AllowedOrigins []string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	ContactRateLimit       int
	GlobalRateLimit        int
	// Serve the swagger UI under /v1/swagger
	SwaggerEnabled bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; only present in local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Trailing slashes are stripped so path joins never produce "//api"
		APIBaseURL:              strings.TrimRight(getEnv("API_BASE_URL", getEnv("NEXT_PUBLIC_API_URL", DefaultAPIBaseURL)), "/"),
		ContactRelayURL:         getEnv("CONTACT_RELAY_URL", ""),
		RelayTimeout:            getEnvDuration("RELAY_TIMEOUT", 0),
		TestimonialsUpstreamURL: strings.TrimRight(getEnv("TESTIMONIALS_UPSTREAM_URL", ""), "/"),
		TestimonialsCacheTTL:    getEnvDuration("TESTIMONIALS_CACHE_TTL", 5*time.Minute),
		AllowedOrigins:          getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		ContactRateLimit:       getEnvInt("CONTACT_RATE_LIMIT", 5),
		GlobalRateLimit:        getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		SwaggerEnabled:         getEnvBool("SWAGGER_ENABLED", true),
	}

	if cfg.ContactRelayURL == "" {
		log.Println("WARNING: CONTACT_RELAY_URL is missing. Contact submissions will be rejected.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting and caching will use in-memory fallback.")
	}

	return cfg, nil
}

// ContactEndpoint is the first-party contact endpoint under the backend base URL.
func (c *Config) ContactEndpoint() string {
	return c.APIBaseURL + "/api/contact"
}

// TestimonialsBaseURL is the upstream the gateway reads testimonials from.
// TESTIMONIALS_UPSTREAM_URL wins over the backend base URL.
func (c *Config) TestimonialsBaseURL() string {
	if c.TestimonialsUpstreamURL != "" {
		return c.TestimonialsUpstreamURL
	}
	return c.APIBaseURL
}

// RateLimitWindow returns the rate limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration syntax ("30s") or a bare number of seconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
