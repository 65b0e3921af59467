package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionFailed is the generic classification for every failed delivery.
// HTTP and network failures both match it through errors.Is.
var ErrSubmissionFailed = errors.New("submission failed")

// ErrRelayNotConfigured is returned when no delivery endpoint is set up.
var ErrRelayNotConfigured = errors.New("contact relay is not configured")

// ErrUpstreamNotConfigured is returned when testimonials cannot be forwarded anywhere.
var ErrUpstreamNotConfigured = errors.New("testimonials upstream is not configured")

// FieldViolation names one field that failed validation and why
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is a field-level rejection. It is never sent over the wire to the relay.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the offending field names in order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}

// FailureKind distinguishes failures for logging only; users see the same message.
type FailureKind int

const (
	FailureNetwork FailureKind = iota
	FailureHTTP
)

func (k FailureKind) String() string {
	if k == FailureHTTP {
		return "http"
	}
	return "network"
}

// SubmissionError wraps a failed delivery attempt.
type SubmissionError struct {
	Kind       FailureKind
	StatusCode int
	Cause      error
}

func (e *SubmissionError) Error() string {
	if e.Kind == FailureHTTP {
		return fmt.Sprintf("%s: unexpected status code %d", ErrSubmissionFailed, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", ErrSubmissionFailed, e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}
