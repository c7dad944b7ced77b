package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/domain/service"
	mockRepo "handyhub/internal/mocks/repository"
	mockSvc "handyhub/internal/mocks/service"
	mockUC "handyhub/internal/mocks/usecase"
	"handyhub/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	verifier     *mockUC.MockVerificationManager
	revoker      *mockUC.MockTokenRevoker
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	verifier := mockUC.NewMockVerificationManager(t)
	revoker := mockUC.NewMockTokenRevoker(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Verifier:     verifier,
		Revoker:      revoker,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		verifier:     verifier,
		revoker:      revoker,
	}
}

// expectTransaction makes the transaction manager run the callback against the
// given factory and propagate its result, mirroring what the real manager does
// on commit and rollback.
func expectTransaction(fx authServiceFixtures, ctx context.Context, factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Jamie",
		Surname:  "Doe",
		Email:    "jamie@example.com",
		Password: "password123",
		Role:     entity.RoleCustomer,
	}
}

func TestAuthService_Register_NewAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().RoleRepo().Return(txRoleRepo)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	expectTransaction(fx, ctx, factory)

	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txRoleRepo.EXPECT().FindByType(ctx, entity.RoleCustomer).
		Return(&entity.Role{ID: 1, Type: entity.RoleCustomer}, nil)
	txAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) error {
			account.ID = 42

			return nil
		})
	fx.verifier.EXPECT().Issue(ctx, txAccountRepo, mock.AnythingOfType("*entity.Account")).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.Account.ID)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, "hashed-password", output.Account.PasswordHash)
	assert.False(t, output.Account.Enabled)
}

func TestAuthService_Register_EmailAlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().RoleRepo().Return(mockRepo.NewMockRoleRepository(t))

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	expectTransaction(fx, ctx, factory)

	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).
		Return(&entity.Account{ID: 7, Email: input.Email, Enabled: true}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyExists))
}

func TestAuthService_Register_RepeatUnverified(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	existing := &entity.Account{ID: 7, Email: input.Email, Enabled: false, VerificationAttempts: 1}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().RoleRepo().Return(mockRepo.NewMockRoleRepository(t))

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	expectTransaction(fx, ctx, factory)

	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
	fx.verifier.EXPECT().ReVerify(ctx, txAccountRepo, existing, input, "hashed-password").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Same(t, existing, output.Account)
}

func TestAuthService_Register_AttemptsExhausted(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	existing := &entity.Account{ID: 7, Email: input.Email, Enabled: false, VerificationAttempts: 3}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().RoleRepo().Return(mockRepo.NewMockRoleRepository(t))

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	// The delete performed by ReVerify must commit, so the callback returns
	// nil even though the registration as a whole fails.
	var callbackErr error
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			callbackErr = fn(factory)

			return callbackErr
		})

	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
	fx.verifier.EXPECT().ReVerify(ctx, txAccountRepo, existing, input, "hashed-password").
		Return(errors.Wrap(domainerrors.ErrAttemptsExhausted, "verification attempts exhausted"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAttemptsExhausted))
	assert.NoError(t, callbackErr, "the exhausted-attempts delete must not roll back")
}

func TestAuthService_Register_MalformedEmail(t *testing.T) {
	fx := createTestAuthService(t)
	input := validRegisterInput()
	input.Email = "not-an-email"

	output, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)
	input := validRegisterInput()
	input.Password = "short"

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)
	input := validRegisterInput()
	input.Role = entity.RoleType("GHOST")

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
}

func enabledAccount(email string) *entity.Account {
	return &entity.Account{
		ID:           7,
		Email:        email,
		PasswordHash: "stored-hash",
		Enabled:      true,
		Role:         entity.Role{ID: 1, Type: entity.RoleCustomer},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := enabledAccount("jamie@example.com")

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(account.Email, "CUSTOMER").Return("access-token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account.Email, "CUSTOMER").Return("refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Same(t, account, output.Account)
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "password123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := enabledAccount("jamie@example.com")

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "wrong-password"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBadCredentials))
}

func TestAuthService_Login_UnverifiedReissuesLink(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := enabledAccount("jamie@example.com")
	account.Enabled = false

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.verifier.EXPECT().Issue(ctx, fx.accountRepo, account).Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "password123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotVerified))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := enabledAccount("jamie@example.com")
	claims := &service.Claims{
		Role: "CUSTOMER",
		Type: service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: account.Email,
		},
	}

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(account.Email, "CUSTOMER").Return("new-access-token", nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)
	claims := &service.Claims{
		Role: "CUSTOMER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jamie@example.com",
		},
	}

	fx.tokenService.EXPECT().ValidateToken("access-token").Return(claims, nil)

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "access-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("garbage").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to parse token structure"))

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Refresh_UnverifiedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := enabledAccount("jamie@example.com")
	account.Enabled = false
	claims := &service.Claims{
		Role: "CUSTOMER",
		Type: service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: account.Email,
		},
	}

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(claims, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotVerified))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.revoker.EXPECT().Revoke(ctx, "access-token").Return(nil)

	err := fx.service.Logout(ctx, "access-token")

	require.NoError(t, err)
}

func TestAuthService_Logout_UnreadableTokenIsFine(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.revoker.EXPECT().Revoke(ctx, "garbage").
		Return(errors.Wrap(domainerrors.ErrInvalidToken, "cannot revoke unreadable token"))

	err := fx.service.Logout(ctx, "garbage")

	require.NoError(t, err)
}

func TestAuthService_Me_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	claims := &service.Claims{
		Role: "VENDOR",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "vendor@example.com",
		},
	}

	fx.tokenService.EXPECT().ValidateToken("access-token").Return(claims, nil)
	fx.revoker.EXPECT().IsRevoked(ctx, "access-token").Return(false, nil)

	output, err := fx.service.Me(ctx, "access-token")

	require.NoError(t, err)
	assert.Equal(t, "vendor@example.com", output.Email)
	assert.Equal(t, "VENDOR", output.Role)
}

func TestAuthService_Me_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "jamie@example.com",
		},
	}

	fx.tokenService.EXPECT().ValidateToken("access-token").Return(claims, nil)
	fx.revoker.EXPECT().IsRevoked(ctx, "access-token").Return(true, nil)

	_, err := fx.service.Me(ctx, "access-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Me_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("garbage").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to parse token structure"))

	_, err := fx.service.Me(context.Background(), "garbage")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
