// Package mail contains outbound mail delivery implementations.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"handyhub/config"
	"handyhub/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpSender delivers mail over plain SMTP with optional auth.
type smtpSender struct {
	addr        string
	auth        smtp.Auth
	from        string
	sendTimeout time.Duration
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.MailConfig) service.MailSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:        auth,
		from:        cfg.From,
		sendTimeout: cfg.SendTimeout,
	}
}

// SendVerificationEmail delivers an email-verification link.
func (s *smtpSender) SendVerificationEmail(ctx context.Context, to, link string) error {
	body := fmt.Sprintf(
		"Welcome to HandyHub!\r\n\r\nPlease verify your email address by opening the link below:\r\n%s\r\n\r\nThe link expires soon, so don't wait too long.\r\n",
		link,
	)

	return s.send(ctx, to, "Verify your HandyHub account", body)
}

// SendPasswordResetEmail delivers a password-reset link.
func (s *smtpSender) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	body := fmt.Sprintf(
		"A password reset was requested for your HandyHub account.\r\n\r\nOpen the link below to choose a new password:\r\n%s\r\n\r\nIf you did not request this, you can ignore this email.\r\n",
		link,
	)

	return s.send(ctx, to, "Reset your HandyHub password", body)
}

// send writes one message. net/smtp has no context support, so the send runs
// in its own goroutine and the caller's context, capped by the configured
// send timeout, bounds the wait.
func (s *smtpSender) send(ctx context.Context, to, subject, body string) error {
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" + body,
	)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg)
	}()

	select {
	case err := <-done:
		return errors.Wrap(err, "smtp send failed")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send timed out")
	}
}
