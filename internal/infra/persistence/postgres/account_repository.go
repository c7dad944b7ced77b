// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading its role.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		First(&accountM, "id = ?", id).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address, preloading its role.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		First(&accountM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByVerificationToken retrieves the account currently holding the given verification token.
func (repo *accountRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error) {
	return repo.findByVerificationToken(ctx, repo.db, token)
}

// FindByVerificationTokenForUpdate is FindByVerificationToken with a SELECT FOR UPDATE
// row lock, so two concurrent verification attempts on the same token serialize.
// The lock is only effective when the repository is bound to a transaction.
func (repo *accountRepository) FindByVerificationTokenForUpdate(ctx context.Context, token string) (*entity.Account, error) {
	locked := repo.db.Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findByVerificationToken(ctx, locked, token)
}

func (repo *accountRepository) findByVerificationToken(ctx context.Context, db *gorm.DB, token string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := db.WithContext(ctx).
		Preload("Role").
		First(&accountM, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by verification token")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Map the pure domain entity to a GORM persistence model.
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("Role").Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required account information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleNotFound.WrapMessage("invalid role reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate the generated ID and timestamps back onto the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
// Save writes every column, which is what the verification state machine needs:
// clearing the token means writing NULL, not skipping the field.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("Role").Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleNotFound.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes the account permanently.
func (repo *accountRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                      data.ID,
		Email:                   data.Email,
		Name:                    data.Name,
		Surname:                 data.Surname,
		PhoneNumber:             data.PhoneNumber,
		PasswordHash:            data.PasswordHash,
		PictureURL:              data.PictureURL,
		Enabled:                 data.Enabled,
		VerificationToken:       data.VerificationToken,
		VerificationTokenExpiry: data.VerificationTokenExpiry,
		VerificationAttempts:    data.VerificationAttempts,
		Role:                    toRoleDomain(&data.Role),
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                      data.ID,
		Email:                   data.Email,
		Name:                    data.Name,
		Surname:                 data.Surname,
		PhoneNumber:             data.PhoneNumber,
		PasswordHash:            data.PasswordHash,
		PictureURL:              data.PictureURL,
		Enabled:                 data.Enabled,
		VerificationToken:       data.VerificationToken,
		VerificationTokenExpiry: data.VerificationTokenExpiry,
		VerificationAttempts:    data.VerificationAttempts,
		RoleID:                  data.Role.ID,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) entity.Role {
	if data == nil {
		return entity.Role{}
	}

	return entity.Role{
		ID:          data.ID,
		Type:        entity.RoleType(data.RoleType),
		Description: data.Description,
	}
}
