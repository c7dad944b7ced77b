package usecase

import (
	"context"

	"handyhub/internal/domain/entity"
	"handyhub/internal/domain/repository"
)

// VerificationManager drives the account verification state machine:
// Unverified accounts either become Verified through the emailed link or are
// deleted once the link expires or the attempt budget runs out.
type VerificationManager interface {
	// Issue attaches a fresh verification token to the account, persists it
	// through the given repository, and mails the link. Callers running inside
	// a transaction pass their transaction-bound repository, so a failed mail
	// send rolls the account back with everything else.
	Issue(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account) error

	// ReVerify handles a repeat registration for an unverified email: it
	// bumps the attempt counter, overwrites the stored profile and password
	// hash with the new data, rotates the token, and resends the link. Once
	// the attempt budget is exhausted the account is deleted instead.
	ReVerify(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account, newData *RegisterInput, newPasswordHash string) error

	// Consume validates an emailed token and enables the account. An expired
	// token deletes the account so the email can be registered again.
	Consume(ctx context.Context, token string) error
}
