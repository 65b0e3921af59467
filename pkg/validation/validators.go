package validation

import (
	"reflect"
	"strings"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator checks contact and testimonial records against their schemas.
// It has no side effects and is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator whose violations are keyed by JSON field names
func New() *Validator {
	v := validator.New()
	RegisterValidators(v)
	return &Validator{validate: v}
}

// RegisterValidators configures a validator instance the way this package expects
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
}

// jsonFieldName reports the json tag name so violations match the wire format
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// ValidateContact accepts a submission unchanged or rejects it with a *domain.ValidationError
func (v *Validator) ValidateContact(sub domain.ContactSubmission) (domain.ContactSubmission, error) {
	if err := v.check(sub); err != nil {
		return domain.ContactSubmission{}, err
	}
	return sub, nil
}

// ValidateTestimonial accepts a testimonial unchanged or rejects it with a *domain.ValidationError
func (v *Validator) ValidateTestimonial(t domain.Testimonial) (domain.Testimonial, error) {
	if err := v.check(t); err != nil {
		return domain.Testimonial{}, err
	}
	return t, nil
}

func (v *Validator) check(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return &domain.ValidationError{Violations: FormatViolations(err)}
}
