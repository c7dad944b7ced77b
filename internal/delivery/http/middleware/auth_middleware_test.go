package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/domain/service"
	mockSvc "handyhub/internal/mocks/service"
	mockUC "handyhub/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for auth middleware tests.
type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	revoker    *mockUC.MockTokenRevoker
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	revoker := mockUC.NewMockTokenRevoker(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, revoker),
		tokenSvc:   tokenSvc,
		revoker:    revoker,
	}
}

func performRequest(t *testing.T, handler echo.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, handler(c)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	claims := &service.Claims{
		Role: "CUSTOMER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jamie@example.com",
		},
	}

	fx.tokenSvc.EXPECT().ValidateToken("good-token").Return(claims, nil)
	fx.revoker.EXPECT().IsRevoked(mock.Anything, "good-token").Return(false, nil)

	var seenSubject, seenRole string
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		seenSubject = deliverycontext.GetSubject(c)
		seenRole = deliverycontext.GetRole(c)

		return c.NoContent(http.StatusOK)
	})

	rec, err := performRequest(t, handler, "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jamie@example.com", seenSubject)
	assert.Equal(t, "CUSTOMER", seenRole)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, err := performRequest(t, fx.middleware.Authenticate(okHandler), "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, err := performRequest(t, fx.middleware.Authenticate(okHandler), "Basic dXNlcjpwYXNz")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().ValidateToken("garbage").
		Return(nil, errors.New("failed to parse token structure"))

	rec, err := performRequest(t, fx.middleware.Authenticate(okHandler), "Bearer garbage")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsRefreshToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	claims := &service.Claims{
		Type: service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jamie@example.com",
		},
	}

	fx.tokenSvc.EXPECT().ValidateToken("refresh-token").Return(claims, nil)

	rec, err := performRequest(t, fx.middleware.Authenticate(okHandler), "Bearer refresh-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RevokedToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jamie@example.com",
		},
	}

	fx.tokenSvc.EXPECT().ValidateToken("revoked-token").Return(claims, nil)
	fx.revoker.EXPECT().IsRevoked(mock.Anything, "revoked-token").Return(true, nil)

	rec, err := performRequest(t, fx.middleware.Authenticate(okHandler), "Bearer revoked-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, "vendor@example.com", "VENDOR")

	err := fx.middleware.RequireRole("VENDOR")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_WrongRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, "customer@example.com", "CUSTOMER")

	err := fx.middleware.RequireRole("VENDOR")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_MissingIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := fx.middleware.RequireRole("VENDOR")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer the-token")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "the-token", BearerToken(c))

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Empty(t, BearerToken(c))

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Empty(t, BearerToken(c))
}
