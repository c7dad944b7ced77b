package mail

import (
	"context"
	"log/slog"

	"handyhub/internal/domain/service"
)

// logSender writes mail to the log instead of delivering it. Used in
// development so the verification flow can be exercised without an SMTP relay.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

// SendVerificationEmail logs the verification link.
func (s *logSender) SendVerificationEmail(ctx context.Context, to, link string) error {
	s.logger.InfoContext(ctx, "Verification email (log driver)",
		slog.String("to", to),
		slog.String("link", link),
	)

	return nil
}

// SendPasswordResetEmail logs the reset link.
func (s *logSender) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	s.logger.InfoContext(ctx, "Password reset email (log driver)",
		slog.String("to", to),
		slog.String("link", link),
	)

	return nil
}
