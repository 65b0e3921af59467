// Package relay delivers contact submissions to a form-relay endpoint.
//
// A Client performs exactly one JSON POST per call. It never retries and never
// inspects the response body: any 2xx is success, everything else collapses
// into domain.ErrSubmissionFailed with the cause kept for logging.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
)

type Client struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

type Option func(*Client)

// WithHTTPClient substitutes the transport, e.g. in tests
func WithHTTPClient(c *http.Client) Option {
	return func(r *Client) {
		r.client = c
	}
}

// WithTimeout bounds each attempt. Zero keeps the platform default.
// It applies to whichever HTTP client ends up configured, regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(r *Client) {
		r.timeout = d
	}
}

// New returns a Client posting to endpoint. An empty endpoint yields a Client
// whose Submit always reports domain.ErrRelayNotConfigured.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		// Copy so a caller-supplied client is never mutated
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts sub as JSON to the configured endpoint
func (c *Client) Submit(ctx context.Context, sub domain.ContactSubmission) error {
	if c.endpoint == "" {
		return domain.ErrRelayNotConfigured
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Warn("Contact relay unreachable", "endpoint", c.endpoint, "error", err)
		return &domain.SubmissionError{Kind: domain.FailureNetwork, Cause: err}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body carries nothing we act on
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Warn("Contact relay rejected submission", "endpoint", c.endpoint, "status", resp.StatusCode)
		return &domain.SubmissionError{Kind: domain.FailureHTTP, StatusCode: resp.StatusCode}
	}

	return nil
}
