package model

import "time"

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(150);not null"`
	Description   string  `gorm:"type:text"`
	Price         float64 `gorm:"not null"`
	ProviderEmail string  `gorm:"type:varchar(255);not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ServiceID     int64     `gorm:"not null;index"`
	CustomerEmail string    `gorm:"type:varchar(255);not null;index"`
	ScheduledAt   time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BookingID int64  `gorm:"not null;index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
