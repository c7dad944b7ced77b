package usecase

import "context"

// ChangePasswordInput carries a password change for an authenticated account.
type ChangePasswordInput struct {
	Email           string // Authenticated subject, taken from the token.
	CurrentPassword string
	NewPassword     string
}

// PasswordUsecase defines the interface for password credential operations.
type PasswordUsecase interface {
	// ForgotPassword issues a single-use reset token and mails the link.
	// A new request supersedes any live one for the same account.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// ChangePassword verifies the current password and stores the new one.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
}
