package usecase

import (
	"context"
	"time"

	"handyhub/internal/domain/entity"
)

// CreateServiceInput defines the data required to publish a service offering.
type CreateServiceInput struct {
	Name          string
	Description   string
	Price         float64
	ProviderEmail string // Authenticated vendor, taken from the token.
}

// CreateBookingInput defines the data required to book a service.
type CreateBookingInput struct {
	ServiceID     int64
	CustomerEmail string // Authenticated customer, taken from the token.
	ScheduledAt   time.Time
}

// LeaveReviewInput defines the data required to review a booking.
type LeaveReviewInput struct {
	BookingID     int64
	CustomerEmail string // Authenticated customer, taken from the token.
	Rating        int
	Comment       string
}

// BookingUsecase defines the marketplace operations built on top of the
// authenticated identity.
type BookingUsecase interface {
	// ListServices returns the public service catalog, newest first.
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// CreateService publishes a new offering owned by the vendor.
	CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error)

	// CreateBooking books an existing service for the customer.
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)

	// ListOwnBookings returns the customer's bookings, newest first.
	ListOwnBookings(ctx context.Context, customerEmail string) ([]*entity.Booking, error)

	// LeaveReview records a rating on one of the customer's own bookings.
	LeaveReview(ctx context.Context, input *LeaveReviewInput) (*entity.Review, error)
}
