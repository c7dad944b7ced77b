package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/domain/service"
	"handyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// authService implements the AuthUsecase interface. It orchestrates the
// verification manager, the token issuer, and the revocation store into the
// registration and session flows.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     usecase.VerificationManager
	revoker      usecase.TokenRevoker
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     usecase.VerificationManager
	Revoker      usecase.TokenRevoker
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		revoker:      params.Revoker,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. A brand-new email
// gets a disabled account plus a verification link; an unverified email gets
// its profile overwritten and the link rotated. The check and the insert share
// one transaction, with the unique email index as the backstop for races.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("role", input.Role))

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	// bcrypt is CPU-bound; hash before entering the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredAccount *entity.Account
	// ReVerify's exhausted-attempts delete must commit while the overall
	// operation still fails; that error travels outside the callback.
	var registerErr error

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		roleRepo := repoFactory.RoleRepo()

		existing, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		if existing != nil {
			if existing.Enabled {
				return errors.Wrap(domainerrors.ErrAlreadyExists, "email already registered and verified")
			}

			reverifyErr := srv.verifier.ReVerify(ctx, accountRepo, existing, input, passwordHash)
			if errors.Is(reverifyErr, domainerrors.ErrAttemptsExhausted) {
				registerErr = reverifyErr

				return nil
			}
			if reverifyErr != nil {
				return reverifyErr
			}

			registeredAccount = existing

			return nil
		}

		role, err := roleRepo.FindByType(ctx, input.Role)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrRoleNotFound, "unknown role in registration")
			}

			return errors.Wrap(err, "failed to resolve role")
		}

		newAccount := &entity.Account{
			Email:        input.Email,
			Name:         input.Name,
			Surname:      input.Surname,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: passwordHash,
			Role:         *role,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		// The mail send happens inside the transaction: if the link cannot be
		// delivered the fresh account rolls back with it.
		if err := srv.verifier.Issue(ctx, accountRepo, newAccount); err != nil {
			return err
		}

		registeredAccount = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	if registerErr != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", registerErr))

		return nil, registerErr
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", registeredAccount.ID))

	return &usecase.RegisterOutput{Account: registeredAccount}, nil
}

// Verify consumes an emailed verification token.
func (srv *authService) Verify(ctx context.Context, token string) error {
	return srv.verifier.Consume(ctx, token)
}

// Login orchestrates the login process and issues the token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !account.Enabled {
		// Re-issue the link so the caller is not stuck with a lost email. The
		// login still fails either way.
		if issueErr := srv.verifier.Issue(ctx, srv.accountRepo, account); issueErr != nil {
			srv.log(ctx).Error("Failed to re-issue verification during login",
				slog.String("email", input.Email), slog.Any("error", issueErr))
		}

		return nil, errors.Wrap(domainerrors.ErrNotVerified, "account not verified")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrBadCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(account.Email, account.Role.Type.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(account.Email, account.Role.Type.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
// The refresh token itself is never rotated here.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	if claims.Type != service.TokenKindRefresh {
		srv.log(ctx).Warn("Access token presented to refresh endpoint")

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is not a refresh token")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "refresh for missing account")
		}

		return nil, errors.Wrap(err, "failed to load account for refresh")
	}
	if !account.Enabled {
		return nil, errors.Wrap(domainerrors.ErrNotVerified, "refresh for unverified account")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(account.Email, account.Role.Type.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout revokes the presented access token. Unreadable or already-dead
// tokens are treated as logged out; there is nothing useful to report.
func (srv *authService) Logout(ctx context.Context, accessToken string) error {
	if err := srv.revoker.Revoke(ctx, accessToken); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidToken) {
			srv.log(ctx).Debug("Logout with unreadable token")

			return nil
		}

		return errors.Wrap(err, "failed to revoke token during logout")
	}

	srv.log(ctx).Info("Logged out")

	return nil
}

// Me resolves the identity behind an access token. Every failure mode
// collapses to ErrUnauthenticated so the endpoint leaks nothing about why.
func (srv *authService) Me(ctx context.Context, accessToken string) (*usecase.MeOutput, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token validation failed")
	}

	revoked, err := srv.revoker.IsRevoked(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token revoked")
	}

	return &usecase.MeOutput{
		Email: claims.Subject,
		Role:  claims.Role,
	}, nil
}

func validateRegistration(input *usecase.RegisterInput) error {
	if !emailPattern.MatchString(input.Email) {
		return errors.Wrap(domainerrors.ErrInvalidInput, "malformed email address")
	}
	if len(input.Password) < minPasswordLength {
		return errors.Wrap(domainerrors.ErrInvalidInput, "password too short")
	}
	if !input.Role.IsValid() {
		return errors.Wrap(domainerrors.ErrRoleNotFound, "unknown role")
	}

	return nil
}
