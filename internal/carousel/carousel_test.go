package carousel_test

import (
	"testing"

	"portfolio-backend/internal/carousel"
	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCarouselWraps(t *testing.T) {
	c := carousel.New(domain.DefaultTestimonials)
	n := len(domain.DefaultTestimonials)

	cur, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, domain.DefaultTestimonials[0], cur)

	prev, _ := c.Prev()
	assert.Equal(t, domain.DefaultTestimonials[n-1], prev)
	assert.Equal(t, n-1, c.Index())

	next, _ := c.Next()
	assert.Equal(t, domain.DefaultTestimonials[0], next)

	for i := 0; i < n; i++ {
		c.Next()
	}
	assert.Equal(t, 0, c.Index(), "a full lap returns to the start")
}

func TestCarouselEmpty(t *testing.T) {
	c := carousel.New(nil)

	_, ok := c.Current()
	assert.False(t, ok)
	_, ok = c.Next()
	assert.False(t, ok)
	_, ok = c.Prev()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCarouselReplaceRewinds(t *testing.T) {
	c := carousel.New(domain.DefaultTestimonials)
	c.Next()
	c.Next()

	c.Replace(domain.DefaultTestimonials[:1])
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Len())

	cur, _ := c.Next()
	assert.Equal(t, domain.DefaultTestimonials[0], cur)
}
