// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the core identity record of the system. One account belongs to one
// person and carries the verification state machine used during registration.
type Account struct {
	ID           int64  // Database-generated numeric identifier.
	Email        string // Unique login identifier; compared case-sensitively.
	Name         string // Given name supplied at registration.
	Surname      string // Family name supplied at registration.
	PhoneNumber  string // Optional contact number.
	PasswordHash string // bcrypt hash of the account's password.
	PictureURL   string // Optional avatar URL.

	// Enabled flips to true exactly once, when the verification token is
	// consumed. While false, the account cannot log in.
	Enabled bool

	// VerificationToken and VerificationTokenExpiry are set while the account
	// is unverified and cleared on successful verification.
	VerificationToken       *string
	VerificationTokenExpiry *time.Time

	// VerificationAttempts counts repeat registrations for the same unverified
	// email; exceeding the configured maximum deletes the account.
	VerificationAttempts int

	Role      Role // The account's single role, fixed at registration.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVerificationExpired reports whether the current verification token lapsed
// before now. Accounts without a pending token are never considered expired.
func (a *Account) IsVerificationExpired(now time.Time) bool {
	return a.VerificationTokenExpiry != nil && now.After(*a.VerificationTokenExpiry)
}

// MarkVerified transitions the account into its terminal verified state:
// enabled, with all verification bookkeeping cleared.
func (a *Account) MarkVerified() {
	a.Enabled = true
	a.VerificationToken = nil
	a.VerificationTokenExpiry = nil
	a.VerificationAttempts = 0
}
