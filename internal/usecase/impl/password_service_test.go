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

// passwordServiceFixtures holds all test dependencies for password service tests.
type passwordServiceFixtures struct {
	service     usecase.PasswordUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	resetRepo   *mockRepo.MockPasswordResetRepository
	hasher      *mockSvc.MockPasswordHasher
	mailSender  *mockSvc.MockMailSender
	now         time.Time
}

func createTestPasswordService(t *testing.T) passwordServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailSender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Verification = &config.VerificationConfig{BaseURL: "http://localhost:8080"}
	cfg.PasswordReset = &config.PasswordResetConfig{TokenTTL: time.Hour}

	svc := NewPasswordService(PasswordServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		ResetRepo:   resetRepo,
		Hasher:      hasher,
		MailSender:  mailSender,
		Config:      cfg,
		Logger:      logger,
	})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.(*passwordService).now = func() time.Time { return now }

	return passwordServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		resetRepo:   resetRepo,
		hasher:      hasher,
		mailSender:  mailSender,
		now:         now,
	}
}

func TestPasswordService_ForgotPassword_Success(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 7, Email: "jamie@example.com"}

	txResetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ResetRepo().Return(txResetRepo)

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txResetRepo.EXPECT().DeleteByAccountID(ctx, account.ID).Return(nil)
	txResetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PasswordResetRequest")).
		RunAndReturn(func(_ context.Context, request *entity.PasswordResetRequest) error {
			assert.Equal(t, account.ID, request.AccountID)
			assert.NotEmpty(t, request.Token)
			assert.Equal(t, fx.now.Add(time.Hour), request.ExpiresAt)

			return nil
		})
	fx.mailSender.EXPECT().
		SendPasswordResetEmail(ctx, account.Email, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _, link string) error {
			assert.True(t, strings.HasPrefix(link, "http://localhost:8080/auth/reset-password?token="))

			return nil
		})

	err := fx.service.ForgotPassword(ctx, account.Email)

	require.NoError(t, err)
}

func TestPasswordService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ForgotPassword(ctx, "ghost@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestPasswordService_ForgotPassword_MailFailureRollsBack(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 7, Email: "jamie@example.com"}

	txResetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ResetRepo().Return(txResetRepo)

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	// The callback's error is what triggers the rollback in the real manager.
	var callbackErr error
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			callbackErr = fn(factory)

			return callbackErr
		})

	txResetRepo.EXPECT().DeleteByAccountID(ctx, account.ID).Return(nil)
	txResetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PasswordResetRequest")).Return(nil)
	fx.mailSender.EXPECT().
		SendPasswordResetEmail(ctx, account.Email, mock.AnythingOfType("string")).
		Return(errors.New("smtp connection refused"))

	err := fx.service.ForgotPassword(ctx, account.Email)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailSendFailed))
	assert.Error(t, callbackErr, "a failed mail send must roll the reset request back")
}

func TestPasswordService_ResetPassword_Success(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 7, Email: "jamie@example.com", PasswordHash: "old-hash"}
	request := &entity.PasswordResetRequest{
		Token:     "reset-token",
		AccountID: account.ID,
		ExpiresAt: fx.now.Add(30 * time.Minute),
	}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txResetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().ResetRepo().Return(txResetRepo)

	fx.hasher.EXPECT().Hash("new-password-123").Return("new-hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txResetRepo.EXPECT().FindByToken(ctx, "reset-token").Return(request, nil)
	txAccountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	txAccountRepo.EXPECT().Update(ctx, account).Return(nil)
	txResetRepo.EXPECT().DeleteByToken(ctx, "reset-token").Return(nil)

	err := fx.service.ResetPassword(ctx, "reset-token", "new-password-123")

	require.NoError(t, err)
	assert.Equal(t, "new-hash", account.PasswordHash)
}

func TestPasswordService_ResetPassword_WeakPassword(t *testing.T) {
	fx := createTestPasswordService(t)

	err := fx.service.ResetPassword(context.Background(), "reset-token", "short")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestPasswordService_ResetPassword_ExpiredTokenIsSpent(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	request := &entity.PasswordResetRequest{
		Token:     "reset-token",
		AccountID: 7,
		ExpiresAt: fx.now.Add(-time.Minute),
	}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txResetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().ResetRepo().Return(txResetRepo)

	fx.hasher.EXPECT().Hash("new-password-123").Return("new-hash", nil)

	// The delete of the spent request must commit despite the failure.
	var callbackErr error
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			callbackErr = fn(factory)

			return callbackErr
		})

	txResetRepo.EXPECT().FindByToken(ctx, "reset-token").Return(request, nil)
	txResetRepo.EXPECT().DeleteByToken(ctx, "reset-token").Return(nil)

	err := fx.service.ResetPassword(ctx, "reset-token", "new-password-123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.NoError(t, callbackErr, "the expired-request delete must not roll back")
}

func TestPasswordService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txResetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().ResetRepo().Return(txResetRepo)

	fx.hasher.EXPECT().Hash("new-password-123").Return("new-hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txResetRepo.EXPECT().FindByToken(ctx, "unknown").
		Return(nil, repository.ErrResetRequestNotFound)

	err := fx.service.ResetPassword(ctx, "unknown", "new-password-123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestPasswordService_ChangePassword_Success(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 7, Email: "jamie@example.com", PasswordHash: "old-hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("current-password", "old-hash").Return(true)
	fx.hasher.EXPECT().Hash("new-password-123").Return("new-hash", nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Email:           account.Email,
		CurrentPassword: "current-password",
		NewPassword:     "new-password-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", account.PasswordHash)
}

func TestPasswordService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 7, Email: "jamie@example.com", PasswordHash: "old-hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong-password", "old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Email:           account.Email,
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password-123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))
}

func TestPasswordService_ChangePassword_WeakNewPassword(t *testing.T) {
	fx := createTestPasswordService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 7, Email: "jamie@example.com", PasswordHash: "old-hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("current-password", "old-hash").Return(true)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Email:           account.Email,
		CurrentPassword: "current-password",
		NewPassword:     "short",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}
