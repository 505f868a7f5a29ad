// Package mailer defines the delivery collaborator that receives
// verification and reset tokens. The auth core never sends mail itself.
package mailer

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/lumenchat/auth-service/internal/mailer Mailer

import (
	"context"
	"log"
)

type Mailer interface {
	SendVerificationEmail(ctx context.Context, address, token string) error
	SendPasswordResetEmail(ctx context.Context, address, token string) error
}

// LogMailer writes outgoing tokens to the process log. It stands in for a
// real delivery service in development.
type LogMailer struct{}

func (LogMailer) SendVerificationEmail(_ context.Context, address, token string) error {
	log.Printf("verification email for %s: token=%s", address, token)
	return nil
}

func (LogMailer) SendPasswordResetEmail(_ context.Context, address, token string) error {
	log.Printf("password reset email for %s: token=%s", address, token)
	return nil
}
