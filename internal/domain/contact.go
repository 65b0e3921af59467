package domain

import "context"

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	Name    string `json:"name" validate:"min=2" example:"Al"`
	Email   string `json:"email" validate:"email" example:"a@b.com"`
	Subject string `json:"subject" validate:"min=5" example:"Hello there"`
	Message string `json:"message" validate:"min=10" example:"This is a test message."`
}

// SubmissionStatus tracks the outcome of the last submit attempt of a form
type SubmissionStatus int

const (
	StatusIdle SubmissionStatus = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s SubmissionStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ContactValidator checks a candidate submission and returns it unchanged when accepted
type ContactValidator interface {
	ValidateContact(sub ContactSubmission) (ContactSubmission, error)
}

// Submitter delivers an accepted submission to a single configured endpoint
type Submitter interface {
	Submit(ctx context.Context, sub ContactSubmission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and relays a contact form message
	SendContactMessage(ctx context.Context, sub ContactSubmission) error
}
