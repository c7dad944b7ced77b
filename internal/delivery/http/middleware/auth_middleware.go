package middleware

import (
	"strings"

	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/delivery/http/response"
	"handyhub/internal/domain/service"
	"handyhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// A token passes only if its signature and expiry check out AND it has not
// been revoked; revocation is answered by the fast layer on every request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	revoker  usecase.TokenRevoker
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, revoker usecase.TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, revoker: revoker}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Refresh tokens never authenticate requests directly.
		if claims.Type == service.TokenKindRefresh {
			return response.Unauthorized(c, "INVALID_TOKEN", "Refresh token cannot be used for requests")
		}

		revoked, err := m.revoker.IsRevoked(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Failed to verify token state")
		}
		if revoked {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token has been revoked")
		}

		deliverycontext.SetIdentity(c, claims.Subject, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the account has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := deliverycontext.GetRole(c)
			if role == "" {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// BearerToken extracts the raw bearer token from the request, or empty string.
// Handlers that operate on the token itself (logout, me) use this.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}
