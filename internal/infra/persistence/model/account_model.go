package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table.
// It is an exported type so it can be shared across the persistence package.
type AccountModel struct {
	ID                      int64  `gorm:"primaryKey;autoIncrement"`
	Email                   string `gorm:"type:varchar(255);unique;not null"`
	Name                    string `gorm:"type:varchar(100)"`
	Surname                 string `gorm:"type:varchar(100)"`
	PhoneNumber             string `gorm:"type:varchar(32)"`
	PasswordHash            string `gorm:"type:varchar(255);not null"`
	PictureURL              string `gorm:"type:text"`
	Enabled                 bool   `gorm:"not null;default:false"`
	VerificationToken       *string `gorm:"type:varchar(64);index"`
	VerificationTokenExpiry *time.Time
	VerificationAttempts    int       `gorm:"not null;default:0"`
	RoleID                  int64     `gorm:"not null"`
	Role                    RoleModel `gorm:"foreignKey:RoleID"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RoleType    string `gorm:"type:varchar(32);unique;not null"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
