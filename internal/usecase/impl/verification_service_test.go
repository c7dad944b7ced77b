package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"handyhub/config"
	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	mockRepo "handyhub/internal/mocks/repository"
	mockSvc "handyhub/internal/mocks/service"
	"handyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification
// service tests. The clock is pinned so expiry windows are deterministic.
type verificationServiceFixtures struct {
	service    usecase.VerificationManager
	txManager  *mockRepo.MockTransactionManager
	mailSender *mockSvc.MockMailSender
	now        time.Time
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mailSender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Verification = &config.VerificationConfig{
		TokenTTL:    time.Hour,
		MaxAttempts: 3,
		BaseURL:     "http://localhost:8080",
	}

	svc := NewVerificationService(VerificationServiceParams{
		TxManager:  txManager,
		MailSender: mailSender,
		Config:     cfg,
		Logger:     logger,
	})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.(*verificationService).now = func() time.Time { return now }

	return verificationServiceFixtures{
		service:    svc,
		txManager:  txManager,
		mailSender: mailSender,
		now:        now,
	}
}

func TestVerificationService_Issue(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	account := &entity.Account{ID: 7, Email: "jamie@example.com", Enabled: true}

	accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.mailSender.EXPECT().
		SendVerificationEmail(ctx, account.Email, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _, link string) error {
			assert.True(t, strings.HasPrefix(link, "http://localhost:8080/auth/verify?token="))

			return nil
		})

	err := fx.service.Issue(ctx, accountRepo, account)

	require.NoError(t, err)
	assert.False(t, account.Enabled)
	require.NotNil(t, account.VerificationToken)
	require.NotNil(t, account.VerificationTokenExpiry)
	assert.Equal(t, fx.now.Add(time.Hour), *account.VerificationTokenExpiry)
}

func TestVerificationService_Issue_MailFailure(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	account := &entity.Account{ID: 7, Email: "jamie@example.com"}

	accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.mailSender.EXPECT().
		SendVerificationEmail(ctx, account.Email, mock.AnythingOfType("string")).
		Return(errors.New("smtp connection refused"))

	err := fx.service.Issue(ctx, accountRepo, account)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailSendFailed))
}

func TestVerificationService_ReVerify_RotatesTokenAndOverwritesProfile(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)

	staleToken := "stale-token"
	account := &entity.Account{
		ID:                   7,
		Email:                "jamie@example.com",
		Name:                 "Jamei",
		PasswordHash:         "old-hash",
		VerificationToken:    &staleToken,
		VerificationAttempts: 1,
	}
	newData := &usecase.RegisterInput{
		Name:    "Jamie",
		Surname: "Doe",
		Email:   account.Email,
	}

	accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.mailSender.EXPECT().
		SendVerificationEmail(ctx, account.Email, mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ReVerify(ctx, accountRepo, account, newData, "new-hash")

	require.NoError(t, err)
	assert.Equal(t, 2, account.VerificationAttempts)
	assert.Equal(t, "Jamie", account.Name)
	assert.Equal(t, "Doe", account.Surname)
	assert.Equal(t, "new-hash", account.PasswordHash)
	require.NotNil(t, account.VerificationToken)
	assert.NotEqual(t, staleToken, *account.VerificationToken)
}

func TestVerificationService_ReVerify_AttemptsExhausted(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	account := &entity.Account{ID: 7, Email: "jamie@example.com", VerificationAttempts: 3}

	accountRepo.EXPECT().Delete(ctx, account.ID).Return(nil)

	err := fx.service.ReVerify(ctx, accountRepo, account, &usecase.RegisterInput{Email: account.Email}, "new-hash")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAttemptsExhausted))
}

func TestVerificationService_Consume_EnablesAccount(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	token := "valid-token"
	expiry := fx.now.Add(30 * time.Minute)
	account := &entity.Account{
		ID:                      7,
		Email:                   "jamie@example.com",
		VerificationToken:       &token,
		VerificationTokenExpiry: &expiry,
		VerificationAttempts:    1,
	}

	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	accountRepo.EXPECT().FindByVerificationTokenForUpdate(ctx, token).Return(account, nil)
	accountRepo.EXPECT().Update(ctx, account).Return(nil)

	err := fx.service.Consume(ctx, token)

	require.NoError(t, err)
	assert.True(t, account.Enabled)
	assert.Nil(t, account.VerificationToken)
	assert.Nil(t, account.VerificationTokenExpiry)
	assert.Zero(t, account.VerificationAttempts)
}

func TestVerificationService_Consume_ExpiredTokenDeletesAccount(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	token := "expired-token"
	expiry := fx.now.Add(-time.Minute)
	account := &entity.Account{
		ID:                      7,
		Email:                   "jamie@example.com",
		VerificationToken:       &token,
		VerificationTokenExpiry: &expiry,
	}

	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)

	// The delete has to commit even though Consume fails, so the callback
	// itself must return nil.
	var callbackErr error
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			callbackErr = fn(factory)

			return callbackErr
		})

	accountRepo.EXPECT().FindByVerificationTokenForUpdate(ctx, token).Return(account, nil)
	accountRepo.EXPECT().Delete(ctx, account.ID).Return(nil)

	err := fx.service.Consume(ctx, token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.NoError(t, callbackErr, "the expired-token delete must not roll back")
}

func TestVerificationService_Consume_UnknownToken(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	accountRepo.EXPECT().FindByVerificationTokenForUpdate(ctx, "unknown").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.Consume(ctx, "unknown")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
