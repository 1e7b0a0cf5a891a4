package mail

import (
	"context"
	"log"
)

// Mailer delivers transactional mail. Actual delivery (SMTP, provider API)
// lives behind this interface; the application only depends on the contract.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes outgoing mail to the process log instead of delivering it.
// Used in development and tests.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("mail to=%s subject=%q body=%q", to, subject, body)
	return nil
}
