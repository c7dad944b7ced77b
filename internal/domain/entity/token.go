// Package entity contains the core business objects of the project.
package entity

import "time"

// RevokedToken records a session token that was explicitly invalidated before
// its natural expiry. Rows are write-once and deleted by the background sweep
// once ExpiresAt has passed; the signature check alone rejects the token from
// then on.
type RevokedToken struct {
	Token     string    // The raw token string, acting as the logical key.
	RevokedAt time.Time // The instant the token was revoked.
	ExpiresAt time.Time // The token's original expiry, parsed from its claims.
}

// RemainingTTL returns how long the token would still be accepted on expiry
// grounds alone. Zero or negative means the token is already dead.
func (t *RevokedToken) RemainingTTL(now time.Time) time.Duration {
	return t.ExpiresAt.Sub(now)
}

// PasswordResetRequest is a single-use token authorizing a password reset for
// one account. At most one live request exists per account; issuing a new one
// deletes any predecessor.
type PasswordResetRequest struct {
	Token     string
	AccountID int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the reset window lapsed before now.
func (r *PasswordResetRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
