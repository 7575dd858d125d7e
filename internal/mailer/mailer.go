package mailer

import (
	"context"
	"log"
)

// Mailer is the password-reset delivery boundary: it receives a recipient
// and a token and either delivers or fails. The quoting core never calls
// it.
type Mailer interface {
	SendResetToken(ctx context.Context, recipient, token string) error
}

// LogMailer is the default wiring for environments without an email
// provider; it just logs the recipient.
type LogMailer struct{}

func (LogMailer) SendResetToken(ctx context.Context, recipient, token string) error {
	log.Printf("password reset token issued for %s", recipient)
	return nil
}
