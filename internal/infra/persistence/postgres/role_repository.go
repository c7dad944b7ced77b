package postgres

import (
	"context"

	"handyhub/internal/domain/entity"
	"handyhub/internal/domain/repository"
	"handyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByType retrieves a role by its well-known type name.
func (repo *roleRepository) FindByType(ctx context.Context, roleType entity.RoleType) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		First(&roleM, "role_type = ?", roleType.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by type")
	}

	role := toRoleDomain(&roleM)

	return &role, nil
}
