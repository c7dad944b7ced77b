package repository

import (
	"context"
	"time"

	"handyhub/internal/domain/entity"
)

// RevokedTokenRepository is the durable layer of the token revocation store.
// It is a recovery backing store, not a query path: the hot-path lookup goes
// through the cache, which is rebuilt from these rows on startup.
type RevokedTokenRepository interface {
	// Create persists a revocation record. Saving the same token twice is not
	// an error; the row is write-once keyed by token.
	Create(ctx context.Context, token *entity.RevokedToken) error

	// FindUnexpired returns all records whose expiry is after now.
	FindUnexpired(ctx context.Context, now time.Time) ([]*entity.RevokedToken, error)

	// DeleteExpired removes records whose expiry is at or before now and
	// returns the number of rows removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
