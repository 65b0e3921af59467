package usecase

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domain"
)

type contactUsecase struct {
	validator domain.ContactValidator
	submitter domain.Submitter
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(validator domain.ContactValidator, submitter domain.Submitter) domain.ContactUsecase {
	return &contactUsecase{
		validator: validator,
		submitter: submitter,
	}
}

// SendContactMessage validates the submission and relays it exactly once
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub domain.ContactSubmission) error {
	accepted, err := uc.validator.ValidateContact(sub)
	if err != nil {
		return err
	}

	if err := uc.submitter.Submit(ctx, accepted); err != nil {
		if errors.Is(err, domain.ErrRelayNotConfigured) {
			return err
		}
		return fmt.Errorf("failed to relay contact message: %w", err)
	}

	return nil
}
