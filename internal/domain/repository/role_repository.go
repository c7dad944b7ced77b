package repository

import (
	"context"
	"errors"

	"handyhub/internal/domain/entity"
)

// ErrRoleNotFound is returned when no role record matches the requested type.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository resolves role types to their persisted records.
type RoleRepository interface {
	// FindByType retrieves the role record for a role type.
	FindByType(ctx context.Context, roleType entity.RoleType) (*entity.Role, error)
}
