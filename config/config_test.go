package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "")
	t.Setenv("RELAY_TIMEOUT", "")
	t.Setenv("TESTIMONIALS_UPSTREAM_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "http://localhost:5000/api/contact", cfg.ContactEndpoint())
	assert.Equal(t, DefaultAPIBaseURL, cfg.TestimonialsBaseURL())
	assert.Equal(t, time.Duration(0), cfg.RelayTimeout)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoadConfigBaseURL(t *testing.T) {
	t.Run("explicit base url wins and loses trailing slash", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com/")
		t.Setenv("NEXT_PUBLIC_API_URL", "https://legacy.example.com")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	})

	t.Run("legacy variable is honoured", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("NEXT_PUBLIC_API_URL", "https://legacy.example.com")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://legacy.example.com", cfg.APIBaseURL)
	})
}

func TestTestimonialsBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")

	t.Run("follows the backend base url", func(t *testing.T) {
		t.Setenv("TESTIMONIALS_UPSTREAM_URL", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.TestimonialsBaseURL())
	})

	t.Run("upstream override wins", func(t *testing.T) {
		t.Setenv("TESTIMONIALS_UPSTREAM_URL", "https://cms.example.com/")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://cms.example.com", cfg.TestimonialsBaseURL())
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_DURATION_GO", "1m30s")
	t.Setenv("TEST_DURATION_SECS", "45")
	t.Setenv("TEST_DURATION_BAD", "soon")
	t.Setenv("TEST_LIST", " https://a.dev , ,https://b.dev")
	t.Setenv("TEST_INT_BAD", "ten")
	t.Setenv("TEST_BOOL", "false")

	assert.Equal(t, 90*time.Second, getEnvDuration("TEST_DURATION_GO", 0))
	assert.Equal(t, 45*time.Second, getEnvDuration("TEST_DURATION_SECS", 0))
	assert.Equal(t, time.Second, getEnvDuration("TEST_DURATION_BAD", time.Second))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, getEnvList("TEST_LIST", nil))
	assert.Equal(t, 7, getEnvInt("TEST_INT_BAD", 7))
	assert.False(t, getEnvBool("TEST_BOOL", true))
}
