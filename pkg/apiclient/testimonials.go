package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
)

var (
	ErrFetchTestimonials = errors.New("failed to fetch testimonials")
	ErrAddTestimonial    = errors.New("failed to add testimonial")
)

// TestimonialClient talks to {baseURL}/api/testimonials
type TestimonialClient struct {
	baseURL string
	client  *http.Client
}

// NewTestimonialClient builds a client for the given backend base URL
func NewTestimonialClient(baseURL string, httpClient *http.Client) *TestimonialClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &TestimonialClient{
		baseURL: baseURL,
		client:  httpClient,
	}
}

func (c *TestimonialClient) endpoint() string {
	return c.baseURL + "/api/testimonials"
}

// List fetches all testimonials. Failures are logged and reported as an empty list.
func (c *TestimonialClient) List(ctx context.Context) []domain.Testimonial {
	items, err := c.Fetch(ctx)
	if err != nil {
		logger.Log.Warn("Error fetching testimonials", "url", c.endpoint(), "error", err)
		return []domain.Testimonial{}
	}
	return items
}

// Fetch is List with the failure reported. A null body decodes to an empty list.
func (c *TestimonialClient) Fetch(ctx context.Context) ([]domain.Testimonial, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchTestimonials, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchTestimonials, resp.StatusCode)
	}

	var items []domain.Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchTestimonials, err)
	}
	if items == nil {
		items = []domain.Testimonial{}
	}
	return items, nil
}

// Create posts one testimonial and returns the record the backend created
func (c *TestimonialClient) Create(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error) {
	body, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode testimonial: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Warn("Error adding testimonial", "url", c.endpoint(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAddTestimonial, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Warn("Error adding testimonial", "url", c.endpoint(), "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrAddTestimonial, resp.StatusCode)
	}

	var created domain.Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAddTestimonial, err)
	}
	return &created, nil
}
