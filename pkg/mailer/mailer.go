// Package mailer delivers contact-form notifications over SMTP.
package mailer

import (
	"gramseva/config"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(subject, body, replyTo string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New returns an SMTP mailer, or a disabled one when no host is
// configured so callers never have to nil-check.
func New(cfg *config.MailConfig) Mailer {
	if cfg.Host == "" || cfg.To == "" {
		return disabled{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func (m *smtpMailer) Send(subject, body, replyTo string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type disabled struct{}

func (disabled) Send(string, string, string) error { return nil }
