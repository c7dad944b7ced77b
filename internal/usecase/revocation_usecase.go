package usecase

import "context"

// TokenRevoker is the dual-backed revocation store: a durable table that
// survives restarts plus a fast TTL cache serving the hot lookup path.
type TokenRevoker interface {
	// Revoke marks a token dead until its natural expiry. Tokens that are
	// already expired are ignored. Idempotent.
	Revoke(ctx context.Context, token string) error

	// IsRevoked reports whether the token was revoked. Served entirely from
	// the fast layer.
	IsRevoked(ctx context.Context, token string) (bool, error)

	// Rehydrate rebuilds the fast layer from the durable rows. Must complete
	// before the process starts accepting requests.
	Rehydrate(ctx context.Context) error

	// Sweep deletes durable rows whose tokens have expired on their own and
	// returns how many were removed.
	Sweep(ctx context.Context) (int64, error)
}
