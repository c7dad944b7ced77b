package postgres

import (
	"context"

	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passwordResetRepository implements the domain.PasswordResetRepository interface using GORM.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a new reset request. The unique index on account_id rejects
// a second live request; callers delete the predecessor first.
func (repo *passwordResetRepository) Create(ctx context.Context, request *entity.PasswordResetRequest) error {
	requestM := fromResetRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("a reset request is already pending for this account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset request")
	}

	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindByToken retrieves a reset request by its token.
func (repo *passwordResetRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetRequest, error) {
	var requestM model.PasswordResetRequestModel
	err := repo.db.WithContext(ctx).
		First(&requestM, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset request by token")
	}

	return toResetRequestDomain(&requestM), nil
}

// DeleteByToken removes a single request after consumption or expiry.
func (repo *passwordResetRepository) DeleteByToken(ctx context.Context, token string) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.PasswordResetRequestModel{}, "token = ?", token).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete password reset request")
	}

	return nil
}

// DeleteByAccountID removes any live request for the account. Deleting nothing
// is fine; the caller only cares that no stale request survives.
func (repo *passwordResetRepository) DeleteByAccountID(ctx context.Context, accountID int64) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.PasswordResetRequestModel{}, "account_id = ?", accountID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete password reset requests for account")
	}

	return nil
}

// toResetRequestDomain converts a GORM PasswordResetRequestModel to a domain entity.
func toResetRequestDomain(data *model.PasswordResetRequestModel) *entity.PasswordResetRequest {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetRequest{
		Token:     data.Token,
		AccountID: data.AccountID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromResetRequestDomain converts a domain PasswordResetRequest to a GORM model.
func fromResetRequestDomain(data *entity.PasswordResetRequest) *model.PasswordResetRequestModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetRequestModel{
		Token:     data.Token,
		AccountID: data.AccountID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
