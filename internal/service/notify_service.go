package service

import (
	"fmt"

	"gramseva/internal/models"
	"gramseva/pkg/mailer"

	"go.uber.org/zap"
)

// NotifyService dispatches best-effort email when a contact message is
// submitted. It runs as a post-commit hook: by the time it is called
// the message row is already persisted, so a delivery failure
// cannot affect the write. Failures are logged and swallowed, never
// retried, never surfaced to the submitter.
type NotifyService struct {
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewNotifyService(m mailer.Mailer, log *zap.Logger) *NotifyService {
	return &NotifyService{mailer: m, log: log}
}

// ContactReceived fires the notification for a newly stored message.
func (s *NotifyService) ContactReceived(msg *models.ContactMessage) {
	go func() {
		subject := "New Message: " + msg.Subject
		body := fmt.Sprintf("From: %s\nEmail: %s\nPhone: %s\n\n%s",
			msg.Name, msg.Email, msg.Phone, msg.Message)
		if err := s.mailer.Send(subject, body, msg.Email); err != nil {
			s.log.Warn("contact notification delivery failed",
				zap.Uint("message_id", msg.ID), zap.Error(err))
		}
	}()
}
