package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/pkg/mailer"
)

// NotificationStatus is the outcome of a notification attempt.
type NotificationStatus int

const (
	NotificationSent NotificationStatus = iota
	// NotificationSkipped means the mail relay is not configured.
	NotificationSkipped
	// NotificationFailed means sending was attempted and failed. The error is
	// logged, never returned.
	NotificationFailed
)

func (s NotificationStatus) String() string {
	switch s {
	case NotificationSent:
		return "sent"
	case NotificationSkipped:
		return "skipped"
	case NotificationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NotificationService emails the site owner about new submissions.
type NotificationService interface {
	Notify(ctx context.Context, sub model.Submission) NotificationStatus
}

type notificationServiceImpl struct {
	client mailer.Client
}

// NewNotificationService creates a NotificationService that sends through client.
func NewNotificationService(client mailer.Client) NotificationService {
	return &notificationServiceImpl{client: client}
}

func (s *notificationServiceImpl) Notify(ctx context.Context, sub model.Submission) NotificationStatus {
	if !s.client.Configured() {
		slog.Info("email config missing, skipping email send")
		return NotificationSkipped
	}

	if err := s.client.Send(ctx, notificationMessage(sub)); err != nil {
		slog.Error("failed to send email notification", "error", err)
		return NotificationFailed
	}
	slog.Info("email notification sent")
	return NotificationSent
}

// notificationMessage embeds the submission fields verbatim. The HTML part is
// not escaped.
func notificationMessage(sub model.Submission) mailer.Message {
	return mailer.Message{
		Subject: "New contact from " + sub.Name,
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", sub.Name, sub.Email, sub.Message),
		HTML: fmt.Sprintf("<p><strong>Name:</strong> %s</p>\n"+
			"<p><strong>Email:</strong> %s</p>\n"+
			"<p><strong>Message:</strong><br>%s</p>",
			sub.Name, sub.Email, strings.ReplaceAll(sub.Message, "\n", "<br>")),
	}
}
