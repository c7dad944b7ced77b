package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	Role string `json:"role"`
	Type string `json:"type,omitempty"` // "refresh" on refresh tokens, empty on access tokens.
	jwt.RegisteredClaims
}

// TokenKindRefresh is the value of the type claim on refresh tokens.
const TokenKindRefresh = "refresh"

// TokenService defines the interface for issuing and validating session tokens.
// Implementations are pure computation over a process-wide signing key: no
// storage, no side effects, safe for concurrent use.
type TokenService interface {
	// GenerateAccessToken creates a short-lived access token for a subject.
	GenerateAccessToken(subject, role string) (string, error)

	// GenerateRefreshToken creates a long-lived refresh token for a subject.
	GenerateRefreshToken(subject, role string) (string, error)

	// ValidateToken checks signature, structure, and expiry. On expiry the
	// parsed claims are still returned alongside the expiry error, so callers
	// can tell an expired token apart from a forged one.
	ValidateToken(tokenString string) (*Claims, error)

	// ExtractSubject parses the subject claim, verifying the signature but
	// tolerating expiry.
	ExtractSubject(tokenString string) (string, error)

	// ExtractExpiry parses the expiry claim, verifying the signature but
	// tolerating expiry. Used by the revocation store to compute the residual
	// blacklist TTL.
	ExtractExpiry(tokenString string) (time.Time, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
