package postgres

import (
	"context"
	"time"

	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// revokedTokenRepository implements the domain.RevokedTokenRepository interface using GORM.
type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository is the constructor for revokedTokenRepository.
func NewRevokedTokenRepository(db *gorm.DB) repository.RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

// Create persists a revocation record. Revoking the same token twice is
// idempotent; the conflicting insert is simply dropped.
func (repo *revokedTokenRepository) Create(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := fromRevokedTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tokenM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to persist revoked token")
	}

	return nil
}

// FindUnexpired returns all revocation records whose expiry is after now.
// Used once at startup to rebuild the fast lookup layer.
func (repo *revokedTokenRepository) FindUnexpired(ctx context.Context, now time.Time) ([]*entity.RevokedToken, error) {
	var tokenMs []*model.RevokedTokenModel
	err := repo.db.WithContext(ctx).
		Where("expires_at > ?", now).
		Find(&tokenMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load unexpired revoked tokens")
	}

	tokens := make([]*entity.RevokedToken, 0, len(tokenMs))
	for _, tokenM := range tokenMs {
		tokens = append(tokens, toRevokedTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteExpired removes records whose expiry is at or before now and reports
// how many rows went away.
func (repo *revokedTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.RevokedTokenModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired revoked tokens")
	}

	return result.RowsAffected, nil
}

// toRevokedTokenDomain converts a GORM RevokedTokenModel to a domain entity.
func toRevokedTokenDomain(data *model.RevokedTokenModel) *entity.RevokedToken {
	if data == nil {
		return nil
	}

	return &entity.RevokedToken{
		Token:     data.Token,
		RevokedAt: data.RevokedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

// fromRevokedTokenDomain converts a domain RevokedToken to a GORM model.
func fromRevokedTokenDomain(data *entity.RevokedToken) *model.RevokedTokenModel {
	if data == nil {
		return nil
	}

	return &model.RevokedTokenModel{
		Token:     data.Token,
		RevokedAt: data.RevokedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
