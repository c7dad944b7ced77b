package service

import (
	"context"
	"time"
)

// TokenCache is the fast lookup layer of the revocation store: a key-value
// structure with per-key TTL. Entries self-expire; the durable layer is the
// authority and repopulates the cache after restart.
type TokenCache interface {
	// Set marks a token revoked for the given remaining lifetime.
	Set(ctx context.Context, token string, ttl time.Duration) error

	// Exists reports whether the token is currently marked revoked.
	Exists(ctx context.Context, token string) (bool, error)
}
