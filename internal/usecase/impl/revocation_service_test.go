package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/infra/cache"
	mockRepo "handyhub/internal/mocks/repository"
	mockSvc "handyhub/internal/mocks/service"
	"handyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// revocationServiceFixtures holds all test dependencies for revocation tests.
// The cache is the real in-memory implementation so revoke-then-check flows
// exercise both layers together; only the durable repo and the token parser
// are mocked.
type revocationServiceFixtures struct {
	service      usecase.TokenRevoker
	tokenRepo    *mockRepo.MockRevokedTokenRepository
	tokenService *mockSvc.MockTokenService
	now          time.Time
}

func createTestRevocationService(t *testing.T) revocationServiceFixtures {
	tokenRepo := mockRepo.NewMockRevokedTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewRevocationService(RevocationServiceParams{
		TokenRepo:    tokenRepo,
		Cache:        cache.NewMemoryTokenCache(),
		TokenService: tokenService,
		Logger:       logger,
	})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.(*revocationService).now = func() time.Time { return now }

	return revocationServiceFixtures{
		service:      svc,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
		now:          now,
	}
}

func TestRevocationService_RevokeThenIsRevoked(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()
	expiresAt := fx.now.Add(time.Hour)

	fx.tokenService.EXPECT().ExtractExpiry("live-token").Return(expiresAt, nil)
	fx.tokenRepo.EXPECT().Create(ctx, &entity.RevokedToken{
		Token:     "live-token",
		RevokedAt: fx.now,
		ExpiresAt: expiresAt,
	}).Return(nil)

	require.NoError(t, fx.service.Revoke(ctx, "live-token"))

	revoked, err := fx.service.IsRevoked(ctx, "live-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = fx.service.IsRevoked(ctx, "other-token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationService_Revoke_ExpiredTokenIsNoop(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ExtractExpiry("dead-token").Return(fx.now.Add(-time.Minute), nil)

	require.NoError(t, fx.service.Revoke(ctx, "dead-token"))

	revoked, err := fx.service.IsRevoked(ctx, "dead-token")
	require.NoError(t, err)
	assert.False(t, revoked, "expiry alone already rejects the token")
}

func TestRevocationService_Revoke_UnreadableToken(t *testing.T) {
	fx := createTestRevocationService(t)

	fx.tokenService.EXPECT().ExtractExpiry("garbage").
		Return(time.Time{}, errors.Wrap(domainerrors.ErrInvalidToken, "failed to parse token structure"))

	err := fx.service.Revoke(context.Background(), "garbage")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestRevocationService_Revoke_DurableWriteFailure(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()
	expiresAt := fx.now.Add(time.Hour)

	fx.tokenService.EXPECT().ExtractExpiry("live-token").Return(expiresAt, nil)
	fx.tokenRepo.EXPECT().Create(ctx, &entity.RevokedToken{
		Token:     "live-token",
		RevokedAt: fx.now,
		ExpiresAt: expiresAt,
	}).Return(errors.New("connection reset"))

	err := fx.service.Revoke(ctx, "live-token")

	require.Error(t, err)

	// The durable layer failed first, so the cache must not claim revocation.
	revoked, checkErr := fx.service.IsRevoked(ctx, "live-token")
	require.NoError(t, checkErr)
	assert.False(t, revoked)
}

func TestRevocationService_Rehydrate(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().FindUnexpired(ctx, fx.now).Return([]*entity.RevokedToken{
		{Token: "token-a", ExpiresAt: fx.now.Add(time.Hour)},
		{Token: "token-b", ExpiresAt: fx.now.Add(10 * time.Minute)},
	}, nil)

	require.NoError(t, fx.service.Rehydrate(ctx))

	for _, token := range []string{"token-a", "token-b"} {
		revoked, err := fx.service.IsRevoked(ctx, token)
		require.NoError(t, err)
		assert.True(t, revoked, token)
	}

	revoked, err := fx.service.IsRevoked(ctx, "never-revoked")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationService_Rehydrate_LoadFailure(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().FindUnexpired(ctx, fx.now).
		Return(nil, errors.New("connection reset"))

	err := fx.service.Rehydrate(ctx)

	require.Error(t, err)
}

func TestRevocationService_Sweep(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().DeleteExpired(ctx, fx.now).Return(int64(3), nil)

	removed, err := fx.service.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestRevocationService_Sweep_Failure(t *testing.T) {
	fx := createTestRevocationService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().DeleteExpired(ctx, fx.now).
		Return(int64(0), errors.New("connection reset"))

	_, err := fx.service.Sweep(ctx)

	require.Error(t, err)
}
