package repository

import (
	"context"
	"errors"

	"handyhub/internal/domain/entity"
)

// ErrResetRequestNotFound is returned when no reset request matches the token.
var ErrResetRequestNotFound = errors.New("password reset request not found")

// PasswordResetRepository persists single-use password reset requests.
// The store guarantees at most one live request per account.
type PasswordResetRepository interface {
	// Create persists a new reset request.
	Create(ctx context.Context, request *entity.PasswordResetRequest) error

	// FindByToken retrieves a reset request by its token.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetRequest, error)

	// DeleteByToken removes a single request after consumption or expiry.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByAccountID removes any live request for the account, superseding
	// it before a new one is created.
	DeleteByAccountID(ctx context.Context, accountID int64) error
}
