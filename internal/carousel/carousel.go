// Package carousel steps through testimonials one at a time, wrapping at both ends.
package carousel

import (
	"sync"

	"portfolio-backend/internal/domain"
)

type Carousel struct {
	mu    sync.RWMutex
	items []domain.Testimonial
	index int
}

func New(items []domain.Testimonial) *Carousel {
	return &Carousel{items: append([]domain.Testimonial(nil), items...)}
}

// Replace swaps in a new set and rewinds to the first entry
func (c *Carousel) Replace(items []domain.Testimonial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]domain.Testimonial(nil), items...)
	c.index = 0
}

func (c *Carousel) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Index is the position of the current entry
func (c *Carousel) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Current returns false when there is nothing to show
func (c *Carousel) Current() (domain.Testimonial, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.items) == 0 {
		return domain.Testimonial{}, false
	}
	return c.items[c.index], true
}

func (c *Carousel) Next() (domain.Testimonial, bool) {
	return c.step(1)
}

func (c *Carousel) Prev() (domain.Testimonial, bool) {
	return c.step(-1)
}

func (c *Carousel) step(delta int) (domain.Testimonial, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	if n == 0 {
		return domain.Testimonial{}, false
	}
	c.index = (c.index + delta + n) % n
	return c.items[c.index], true
}
