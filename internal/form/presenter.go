package form

import (
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

const (
	SuccessTitle   = "Message Sent Successfully!"
	SuccessMessage = "Thank you for reaching out. I'll get back to you as soon as possible."
	SubmitLabel    = "Send Message"
	PendingLabel   = "Sending..."
	ResetLabel     = "Send Another Message"
)

// View is what the contact section should render for the current state
type View struct {
	Status     domain.SubmissionStatus
	Fields     domain.ContactSubmission
	Violations []domain.FieldViolation

	ShowForm      bool
	SubmitEnabled bool
	SubmitLabel   string
	ShowSpinner   bool

	// Success confirmation
	Title   string
	Message string
	// Error banner; identical for HTTP and network failures
	Banner string
}

// View renders a snapshot of the form
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		Status:      f.status,
		Fields:      f.fields,
		Violations:  append([]domain.FieldViolation(nil), f.violations...),
		ShowForm:    true,
		SubmitLabel: SubmitLabel,
	}

	switch f.status {
	case domain.StatusIdle:
		v.SubmitEnabled = true
	case domain.StatusPending:
		v.SubmitLabel = PendingLabel
		v.ShowSpinner = true
	case domain.StatusSuccess:
		v.ShowForm = false
		v.SubmitLabel = ResetLabel
		v.Title = SuccessTitle
		v.Message = SuccessMessage
	case domain.StatusError:
		v.SubmitEnabled = true
		v.Banner = apperror.GenericSubmissionMessage
	}
	return v
}
