// Package entity contains the core business objects of the project.
package entity

import "time"

// BookingStatus enumerates the lifecycle of a booking.
type BookingStatus string

const (
	// BookingPending is the state of a freshly created booking.
	BookingPending BookingStatus = "PENDING"
	// BookingConfirmed means the vendor accepted the booking.
	BookingConfirmed BookingStatus = "CONFIRMED"
	// BookingCompleted means the service was delivered.
	BookingCompleted BookingStatus = "COMPLETED"
	// BookingCancelled means either party cancelled.
	BookingCancelled BookingStatus = "CANCELLED"
)

// Service is a vendor's offering in the marketplace catalog.
type Service struct {
	ID            int64
	Name          string
	Description   string
	Price         float64
	ProviderEmail string // Owning vendor account email.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Booking ties a customer to a service at a scheduled time.
type Booking struct {
	ID            int64
	ServiceID     int64
	CustomerEmail string
	ScheduledAt   time.Time
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Review is a customer's rating of a completed booking.
type Review struct {
	ID        int64
	BookingID int64
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
