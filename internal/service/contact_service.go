package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// ErrMissingField is returned by Submit when name, email or message is empty.
var ErrMissingField = errors.New("all fields are required")

// SubmitResult describes what Submit did beyond storing the submission.
type SubmitResult struct {
	// Submission is the stored record including its server timestamp.
	Submission model.Submission
	// Outcome is OutcomeReset when previous file content was discarded.
	Outcome repository.Outcome
	// Notification is the outcome of the best-effort email.
	Notification NotificationStatus
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new submission, then tries to notify the
	// site owner. Notification failures never produce an error.
	Submit(ctx context.Context, name, email, message string) (SubmitResult, error)

	// List returns every stored submission in insertion order.
	List(ctx context.Context) ([]model.Submission, error)
}
