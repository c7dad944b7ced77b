package impl

import (
	"context"
	"log/slog"

	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	"handyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceRepository
	BookingRepo repository.BookingRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		serviceRepo: params.ServiceRepo,
		bookingRepo: params.BookingRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListServices returns the public service catalog.
func (srv *bookingService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// CreateService publishes a new offering owned by the vendor.
func (srv *bookingService) CreateService(ctx context.Context, input *usecase.CreateServiceInput) (*entity.Service, error) {
	if input.Name == "" || input.Price <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "service needs a name and a positive price")
	}

	offering := &entity.Service{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		ProviderEmail: input.ProviderEmail,
	}
	if err := srv.serviceRepo.Create(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service published",
		slog.Int64("serviceID", offering.ID),
		slog.String("provider", offering.ProviderEmail))

	return offering, nil
}

// CreateBooking books an existing service for the customer.
func (srv *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if _, err := srv.serviceRepo.FindByID(ctx, input.ServiceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "cannot book missing service")
		}

		return nil, errors.Wrap(err, "failed to check service for booking")
	}

	booking := &entity.Booking{
		ServiceID:     input.ServiceID,
		CustomerEmail: input.CustomerEmail,
		ScheduledAt:   input.ScheduledAt,
		Status:        entity.BookingPending,
	}
	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.Int64("bookingID", booking.ID),
		slog.Int64("serviceID", booking.ServiceID))

	return booking, nil
}

// ListOwnBookings returns the customer's bookings.
func (srv *bookingService) ListOwnBookings(ctx context.Context, customerEmail string) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindByCustomer(ctx, customerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// LeaveReview records a rating on one of the customer's own bookings.
func (srv *bookingService) LeaveReview(ctx context.Context, input *usecase.LeaveReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "rating out of range")
	}

	booking, err := srv.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookingNotFound, "cannot review missing booking")
		}

		return nil, errors.Wrap(err, "failed to load booking for review")
	}

	if booking.CustomerEmail != input.CustomerEmail {
		srv.log(ctx).Warn("Review attempt on another customer's booking",
			slog.Int64("bookingID", booking.ID))

		return nil, errors.Wrap(domainerrors.ErrBookingOwnershipViolation, "booking belongs to another customer")
	}

	review := &entity.Review{
		BookingID: booking.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}
