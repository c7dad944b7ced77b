// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"handyhub/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByVerificationToken retrieves the account currently holding the given
	// verification token.
	FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByVerificationTokenForUpdate is FindByVerificationToken with a row
	// lock. Only meaningful on repositories obtained from a RepositoryFactory;
	// the lock is held until the enclosing transaction completes.
	FindByVerificationTokenForUpdate(ctx context.Context, token string) (*entity.Account, error)

	// Create persists a new account. Email uniqueness is enforced by the store.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account permanently.
	Delete(ctx context.Context, id int64) error
}
