// Package form holds the state of one contact form session.
//
// Transitions:
//
//	Idle    --submit(valid)--> Pending
//	Pending --delivered------> Success (fields cleared)
//	Pending --failed---------> Error   (fields kept)
//	Error   --submit(valid)--> Pending
//	Success|Error --reset----> Idle
//
// A rejected validation leaves the status where it was and records the violations.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
)

// Field identifies one of the four editable inputs
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	// ErrNotEditable is returned when editing while the confirmation is shown
	ErrNotEditable = errors.New("form is not editable until reset")
)

// Form is safe for use from multiple goroutines. The lock is never held across
// the network call, so View stays responsive while a submission is in flight.
type Form struct {
	validator domain.ContactValidator
	submitter domain.Submitter

	mu         sync.Mutex
	fields     domain.ContactSubmission
	status     domain.SubmissionStatus
	violations []domain.FieldViolation
}

func New(validator domain.ContactValidator, submitter domain.Submitter) *Form {
	return &Form{
		validator: validator,
		submitter: submitter,
		status:    domain.StatusIdle,
	}
}

// Set updates one field. Edits are accepted in every state but Success.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == domain.StatusSuccess {
		return ErrNotEditable
	}

	switch field {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldSubject:
		f.fields.Subject = value
	case FieldMessage:
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Status reports the current state
func (f *Form) Status() domain.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates the current fields and, when they pass, delivers them once.
// It is a no-op while Pending or Success. The returned error is the validation
// or delivery failure, if any; the resulting status is always returned.
func (f *Form) Submit(ctx context.Context) (domain.SubmissionStatus, error) {
	f.mu.Lock()
	if f.status == domain.StatusPending || f.status == domain.StatusSuccess {
		status := f.status
		f.mu.Unlock()
		return status, nil
	}

	accepted, err := f.validator.ValidateContact(f.fields)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			f.violations = verr.Violations
		}
		status := f.status
		f.mu.Unlock()
		return status, err
	}

	f.violations = nil
	f.status = domain.StatusPending
	f.mu.Unlock()

	err = f.submitter.Submit(ctx, accepted)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		logger.Log.Error("Error submitting form", "error", err)
		f.status = domain.StatusError
		return f.status, err
	}

	f.status = domain.StatusSuccess
	f.fields = domain.ContactSubmission{}
	return f.status, nil
}

// Reset returns from Success or Error to Idle. Field values are left as they
// are: already cleared after Success, kept after Error.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == domain.StatusSuccess || f.status == domain.StatusError {
		f.status = domain.StatusIdle
		f.violations = nil
	}
}
