package repository

import (
	"context"
	"errors"

	"handyhub/internal/domain/entity"
)

// ErrServiceNotFound is returned when a catalog service does not exist.
var ErrServiceNotFound = errors.New("service not found")

// ErrBookingNotFound is returned when a booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ServiceRepository persists the vendor service catalog.
type ServiceRepository interface {
	// Create persists a new service offering.
	Create(ctx context.Context, service *entity.Service) error

	// FindByID retrieves a single service by ID.
	FindByID(ctx context.Context, id int64) (*entity.Service, error)

	// List returns the full catalog, newest first.
	List(ctx context.Context) ([]*entity.Service, error)
}

// BookingRepository persists customer bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a single booking by ID.
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)

	// FindByCustomer returns all bookings made by the given customer email.
	FindByCustomer(ctx context.Context, email string) ([]*entity.Booking, error)

	// Update modifies an existing booking.
	Update(ctx context.Context, booking *entity.Booking) error
}

// ReviewRepository persists booking reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByBooking returns reviews left on a booking.
	FindByBooking(ctx context.Context, bookingID int64) ([]*entity.Review, error)
}
