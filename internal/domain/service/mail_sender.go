package service

import "context"

// MailSender delivers the verification and reset links the credential flows
// depend on. The core does not care how delivery happens; implementations may
// talk SMTP, an API, or just log in development.
type MailSender interface {
	// SendVerificationEmail delivers an email-verification link.
	SendVerificationEmail(ctx context.Context, to, link string) error

	// SendPasswordResetEmail delivers a password-reset link.
	SendPasswordResetEmail(ctx context.Context, to, link string) error
}
