package model

import "time"

// RevokedTokenModel mirrors the 'revoked_tokens' table. The raw token string
// is the primary key; rows are write-once and removed by the sweep.
type RevokedTokenModel struct {
	Token     string    `gorm:"type:text;primaryKey"`
	RevokedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

// PasswordResetRequestModel mirrors the 'password_reset_requests' table.
// The unique index on AccountID enforces at most one live request per account.
type PasswordResetRequestModel struct {
	Token     string    `gorm:"type:varchar(64);primaryKey"`
	AccountID int64     `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetRequestModel) TableName() string {
	return "password_reset_requests"
}
