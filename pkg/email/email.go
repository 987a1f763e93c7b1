package email

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"

	"go-studio-backend/config"

	"github.com/google/uuid"
)

// Message is one outbound mail. Body is plain text.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer is the delivery capability the inquiry pipeline depends on.
// Any transactional provider (SMTP relay, queue-based mailer) satisfies it.
type Mailer interface {
	// Send delivers one message and returns an opaque delivery identifier.
	Send(ctx context.Context, msg Message) (string, error)
}

// SMTPMailer sends mail through the configured SMTP relay (Brevo).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send delivers the message over SMTP. The relay does not report a message
// id, so a fresh UUID stands in as the delivery identifier.
func (s *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !s.IsConfigured() {
		return "", fmt.Errorf("email service is not configured")
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, EnvelopeFrom(msg.From), []string{msg.To}, BuildMIME(msg)); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return uuid.NewString(), nil
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (s *SMTPMailer) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// EnvelopeFrom reduces a From value to the bare address for the SMTP
// reverse-path. RFC 5321 forbids display names inside MAIL FROM; those
// belong in the From header only.
func EnvelopeFrom(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	return from
}

// BuildMIME constructs the raw text/plain MIME message.
func BuildMIME(msg Message) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		msg.From,
		msg.To,
		msg.ReplyTo,
		msg.Subject,
		msg.Body,
	))
}
