package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiterWindow(t *testing.T) {
	s := &memoryLimiter{entries: make(map[string]*rateLimitEntry)}
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	n, reset := s.hit("k", time.Minute, start)
	assert.Equal(t, 1, n)
	assert.Equal(t, start.Add(time.Minute), reset)

	n, _ = s.hit("k", time.Minute, start.Add(30*time.Second))
	assert.Equal(t, 2, n)

	n, _ = s.hit("k", time.Minute, start.Add(61*time.Second))
	assert.Equal(t, 1, n, "a new window starts after reset")
}

func TestMemoryLimiterSweepsExpiredKeys(t *testing.T) {
	s := &memoryLimiter{entries: make(map[string]*rateLimitEntry)}
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.hit("a", time.Minute, start)
	s.hit("b", time.Minute, start.Add(2*time.Minute))

	assert.NotContains(t, s.entries, "a")
	assert.Contains(t, s.entries, "b")
}

func TestRateLimitFailsOpenToMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	r := gin.New()
	r.Use(RateLimitMiddleware(RateLimitConfig{Limit: 1, Window: time.Minute, KeyPrefix: "t:", Client: client}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
