// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"handyhub/config"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte        // Symmetric signing key, loaded once at startup.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.JWT),
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}, nil
}

// GenerateAccessToken creates a short-lived access token for a subject and role.
func (s *jwtService) GenerateAccessToken(subject, role string) (string, error) {
	return s.generateToken(subject, role, s.accessTTL, "")
}

// GenerateRefreshToken creates a long-lived refresh token, marked with a type claim.
func (s *jwtService) GenerateRefreshToken(subject, role string) (string, error) {
	return s.generateToken(subject, role, s.refreshTTL, service.TokenKindRefresh)
}

// ValidateToken checks the signature, structure, and expiry of a token string.
// Expired tokens with an intact signature return their claims alongside
// ErrTokenExpired so callers can distinguish "expired" from "forged".
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc)

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		// Signature was verified before the expiry check, so the claims are
		// trustworthy even though the token is dead.
		return claims, errors.Wrap(domainerrors.ErrTokenExpired, "token past expiry")
	default:
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to parse token structure")
	}
}

// ExtractSubject parses the subject claim, verifying the signature but tolerating expiry.
func (s *jwtService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.parseIgnoringExpiry(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// ExtractExpiry parses the expiry claim, verifying the signature but tolerating expiry.
func (s *jwtService) ExtractExpiry(tokenString string) (time.Time, error) {
	claims, err := s.parseIgnoringExpiry(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.Wrap(domainerrors.ErrInvalidToken, "token carries no expiry claim")
	}

	return claims.ExpiresAt.Time, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(subject, role string, ttl time.Duration, kind string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Role: role,
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parseIgnoringExpiry verifies signature and structure but skips claim validation.
func (s *jwtService) parseIgnoringExpiry(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(tokenString, claims, s.keyFunc); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to parse token structure")
	}

	return claims, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}
