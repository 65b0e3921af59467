package validation

import (
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to user-friendly labels
var FieldLabels = map[string]string{
	"name":        "Name",
	"email":       "Email",
	"subject":     "Subject",
	"message":     "Message",
	"designation": "Designation",
}

// FormatViolations converts validator.ValidationErrors to field violations
func FormatViolations(err error) []domain.FieldViolation {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error (e.g. invalid argument); report it against the record itself
		return []domain.FieldViolation{{Field: "", Reason: err.Error()}}
	}

	violations := make([]domain.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, domain.FieldViolation{
			Field:  e.Field(),
			Reason: formatSingleError(e),
		})
	}
	return violations
}

// FormatMessages renders violations as "Label: reason" lines for display
func FormatMessages(violations []domain.FieldViolation) []string {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		if v.Field == "" {
			messages = append(messages, v.Reason)
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: %s", getFieldLabel(v.Field), v.Reason))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly reason
func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "is required"

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		return fmt.Sprintf("must be at least %s", param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		return fmt.Sprintf("must be at most %s", param)

	case "email":
		return "must be a valid email address"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
