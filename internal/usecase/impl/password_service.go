package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"handyhub/config"
	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/domain/service"
	"handyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	resetRepo   repository.PasswordResetRepository
	hasher      service.PasswordHasher
	mailSender  service.MailSender
	resetTTL    time.Duration
	baseURL     string
	logger      *slog.Logger

	now func() time.Time
}

// PasswordServiceParams holds dependencies for passwordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ResetRepo   repository.PasswordResetRepository
	Hasher      service.PasswordHasher
	MailSender  service.MailSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	return &passwordService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		resetRepo:   params.ResetRepo,
		hasher:      params.Hasher,
		mailSender:  params.MailSender,
		resetTTL:    params.Config.PasswordReset.TokenTTL,
		baseURL:     params.Config.Verification.BaseURL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword issues a single-use reset token and mails the link. A fresh
// request supersedes any live one for the same account, so delete and create
// share one transaction with the mail send as the final gate.
func (srv *passwordService) ForgotPassword(ctx context.Context, email string) error {
	srv.log(ctx).Info("Password reset requested", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "no account for reset request")
		}

		return errors.Wrap(err, "failed to look up account for reset request")
	}

	token := uuid.New().String()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.ResetRepo()

		if err := resetRepo.DeleteByAccountID(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to supersede previous reset request")
		}

		request := &entity.PasswordResetRequest{
			Token:     token,
			AccountID: account.ID,
			ExpiresAt: srv.now().Add(srv.resetTTL),
		}
		if err := resetRepo.Create(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create reset request")
		}

		link := fmt.Sprintf("%s/auth/reset-password?token=%s", srv.baseURL, token)
		if err := srv.mailSender.SendPasswordResetEmail(ctx, account.Email, link); err != nil {
			srv.log(ctx).Error("Failed to send password reset email",
				slog.String("email", account.Email), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrMailSendFailed, "failed to send password reset email")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset request transaction")
	}

	return nil
}

// ResetPassword consumes a reset token and stores the new password. The
// request row is deleted whether the reset succeeds or the token turned out
// to be expired; either way it is spent.
func (srv *passwordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.Wrap(domainerrors.ErrWeakPassword, "new password too short")
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	// The expired-token delete has to commit even though the operation fails,
	// so the business error is carried outside the transaction callback.
	var resetErr error

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		resetRepo := repoFactory.ResetRepo()

		request, err := resetRepo.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrResetRequestNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidToken, "unknown reset token")
			}

			return errors.Wrap(err, "failed to look up reset token")
		}

		if request.IsExpired(srv.now()) {
			if err := resetRepo.DeleteByToken(ctx, token); err != nil {
				return errors.Wrap(err, "failed to delete expired reset request")
			}

			resetErr = errors.Wrap(domainerrors.ErrTokenExpired, "reset token expired")

			return nil
		}

		account, err := accountRepo.FindByID(ctx, request.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load account for reset")
		}

		account.PasswordHash = hash
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store new password")
		}

		if err := resetRepo.DeleteByToken(ctx, token); err != nil {
			return errors.Wrap(err, "failed to consume reset request")
		}

		srv.log(ctx).Info("Password reset completed", slog.Int64("accountID", account.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return resetErr
}

// ChangePassword verifies the current password and stores the new one.
func (srv *passwordService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "no account for password change")
		}

		return errors.Wrap(err, "failed to load account for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password",
			slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrIncorrectPassword, "current password mismatch")
	}

	if len(input.NewPassword) < minPasswordLength {
		return errors.Wrap(domainerrors.ErrWeakPassword, "new password too short")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	account.PasswordHash = hash
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to store changed password")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("accountID", account.ID))

	return nil
}
