package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.SubmissionRepository
	notifier NotificationService
	now      func() time.Time
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.SubmissionRepository, notifier NotificationService) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier, now: time.Now}
}

// Submit stores a new submission with a server-generated timestamp and then
// sends the notification synchronously.
func (s *contactServiceImpl) Submit(ctx context.Context, name, email, message string) (SubmitResult, error) {
	if name == "" || email == "" || message == "" {
		return SubmitResult{}, ErrMissingField
	}

	sub := model.Submission{
		Name:    name,
		Email:   email,
		Message: message,
		Time:    model.FormatTime(s.now()),
	}

	outcome, err := s.repo.Append(ctx, sub)
	if err != nil {
		return SubmitResult{Outcome: outcome}, err
	}
	if outcome == repository.OutcomeReset {
		slog.Warn("stored submissions were unreadable and have been replaced")
	}
	slog.Info("submission saved", "name", name, "email", email)

	return SubmitResult{
		Submission:   sub,
		Outcome:      outcome,
		Notification: s.notifier.Notify(ctx, sub),
	}, nil
}

// List returns every stored submission. A corrupted store yields an empty list.
func (s *contactServiceImpl) List(ctx context.Context) ([]model.Submission, error) {
	subs, outcome, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if outcome == repository.OutcomeReset {
		slog.Warn("stored submissions are unreadable, returning an empty list")
	}
	return subs, nil
}
