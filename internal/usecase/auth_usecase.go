// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"handyhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name        string
	Surname     string
	Email       string
	PhoneNumber string
	Password    string
	Role        entity.RoleType
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the refresh token presented for a new access token.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
// The account is disabled until the emailed verification link is consumed.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshOutput returns the re-issued access token. The refresh token itself
// is never rotated here.
type RefreshOutput struct {
	AccessToken string
}

// MeOutput is the authenticated identity derived from an access token.
type MeOutput struct {
	Email string
	Role  string
}

// AuthUsecase defines the interface for credential lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a disabled account and sends a verification link.
	// Re-registering an unverified email rotates the link instead.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Verify consumes an emailed verification token, enabling the account.
	Verify(ctx context.Context, token string) error

	// Login checks credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout revokes the presented access token. Idempotent; revoking an
	// already-dead token is not an error.
	Logout(ctx context.Context, accessToken string) error

	// Me resolves the identity behind an access token. Any failure, including
	// revocation, collapses to ErrUnauthenticated.
	Me(ctx context.Context, accessToken string) (*MeOutput, error)
}
