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

// verificationService implements the VerificationManager interface.
type verificationService struct {
	txManager   repository.TransactionManager
	mailSender  service.MailSender
	tokenTTL    time.Duration
	maxAttempts int
	baseURL     string
	logger      *slog.Logger

	now func() time.Time
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MailSender service.MailSender
	Config     *config.Config
	Logger     *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationManager {
	return &verificationService{
		txManager:   params.TxManager,
		mailSender:  params.MailSender,
		tokenTTL:    params.Config.Verification.TokenTTL,
		maxAttempts: params.Config.Verification.MaxAttempts,
		baseURL:     params.Config.Verification.BaseURL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue attaches a fresh verification token to the account, persists it, and
// mails the link. The mail send is part of the operation: if the link cannot
// be delivered the caller's transaction rolls the account back.
func (srv *verificationService) Issue(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account) error {
	token := uuid.New().String()
	expiry := srv.now().Add(srv.tokenTTL)

	account.Enabled = false
	account.VerificationToken = &token
	account.VerificationTokenExpiry = &expiry

	if err := accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to store verification token")
	}

	return srv.sendLink(ctx, account.Email, token)
}

// ReVerify handles a repeat registration for an email that never finished
// verifying. The new data wins: the caller may be correcting a typo in their
// name or password, so the stored profile is overwritten before the token
// rotates.
func (srv *verificationService) ReVerify(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account, newData *usecase.RegisterInput, newPasswordHash string) error {
	account.VerificationAttempts++
	if account.VerificationAttempts > srv.maxAttempts {
		srv.log(ctx).Warn("Verification attempts exhausted, deleting account",
			slog.String("email", account.Email),
			slog.Int("attempts", account.VerificationAttempts))

		if err := accountRepo.Delete(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to delete account after exhausted attempts")
		}

		return errors.Wrap(domainerrors.ErrAttemptsExhausted, "verification attempts exhausted")
	}

	account.Name = newData.Name
	account.Surname = newData.Surname
	account.PhoneNumber = newData.PhoneNumber
	account.PasswordHash = newPasswordHash

	token := uuid.New().String()
	expiry := srv.now().Add(srv.tokenTTL)
	account.VerificationToken = &token
	account.VerificationTokenExpiry = &expiry

	if err := accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to rotate verification token")
	}

	return srv.sendLink(ctx, account.Email, token)
}

// Consume validates an emailed token and enables the account. The row lock
// serializes concurrent clicks on the same link: the loser of the race sees
// either the already-cleared token or the deleted account, both of which
// resolve to ErrInvalidToken.
func (srv *verificationService) Consume(ctx context.Context, token string) error {
	// A business failure that must still commit (the expired-token delete)
	// cannot be returned from the transaction callback, or the rollback would
	// resurrect the account. It is carried out here instead.
	var consumeErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByVerificationTokenForUpdate(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidToken, "unknown verification token")
			}

			return errors.Wrap(err, "failed to look up verification token")
		}

		if account.IsVerificationExpired(srv.now()) {
			srv.log(ctx).Info("Verification token expired, deleting account",
				slog.String("email", account.Email))

			if err := accountRepo.Delete(ctx, account.ID); err != nil {
				return errors.Wrap(err, "failed to delete account with expired verification")
			}

			consumeErr = errors.Wrap(domainerrors.ErrTokenExpired, "verification token expired")

			return nil
		}

		account.MarkVerified()
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to enable verified account")
		}

		srv.log(ctx).Info("Account verified", slog.String("email", account.Email))

		return nil
	})
	if err != nil {
		return err
	}

	return consumeErr
}

func (srv *verificationService) sendLink(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", srv.baseURL, token)

	if err := srv.mailSender.SendVerificationEmail(ctx, email, link); err != nil {
		srv.log(ctx).Error("Failed to send verification email",
			slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailSendFailed, "failed to send verification email")
	}

	return nil
}
