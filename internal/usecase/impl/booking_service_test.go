package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/repository"
	mockRepo "handyhub/internal/mocks/repository"
	"handyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	serviceRepo *mockRepo.MockServiceRepository
	bookingRepo *mockRepo.MockBookingRepository
	reviewRepo  *mockRepo.MockReviewRepository
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewBookingService(BookingServiceParams{
		ServiceRepo: serviceRepo,
		BookingRepo: bookingRepo,
		ReviewRepo:  reviewRepo,
		Logger:      logger,
	})

	return bookingServiceFixtures{
		service:     svc,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

func TestBookingService_ListServices(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	catalog := []*entity.Service{
		{ID: 2, Name: "Pipe repair"},
		{ID: 1, Name: "Lawn mowing"},
	}

	fx.serviceRepo.EXPECT().List(ctx).Return(catalog, nil)

	services, err := fx.service.ListServices(ctx)

	require.NoError(t, err)
	assert.Equal(t, catalog, services)
}

func TestBookingService_CreateService(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.serviceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Service")).
		RunAndReturn(func(_ context.Context, offering *entity.Service) error {
			offering.ID = 5

			return nil
		})

	offering, err := fx.service.CreateService(ctx, &usecase.CreateServiceInput{
		Name:          "Pipe repair",
		Description:   "Leaks fixed within a day",
		Price:         80,
		ProviderEmail: "vendor@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), offering.ID)
	assert.Equal(t, "vendor@example.com", offering.ProviderEmail)
}

func TestBookingService_CreateService_InvalidInput(t *testing.T) {
	fx := createTestBookingService(t)

	_, err := fx.service.CreateService(context.Background(), &usecase.CreateServiceInput{
		Name:  "",
		Price: 80,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = fx.service.CreateService(context.Background(), &usecase.CreateServiceInput{
		Name:  "Pipe repair",
		Price: 0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestBookingService_CreateBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	scheduledAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	fx.serviceRepo.EXPECT().FindByID(ctx, int64(5)).
		Return(&entity.Service{ID: 5, Name: "Pipe repair"}, nil)
	fx.bookingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Booking")).
		RunAndReturn(func(_ context.Context, booking *entity.Booking) error {
			booking.ID = 11

			return nil
		})

	booking, err := fx.service.CreateBooking(ctx, &usecase.CreateBookingInput{
		ServiceID:     5,
		CustomerEmail: "customer@example.com",
		ScheduledAt:   scheduledAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), booking.ID)
	assert.Equal(t, entity.BookingPending, booking.Status)
	assert.Equal(t, scheduledAt, booking.ScheduledAt)
}

func TestBookingService_CreateBooking_MissingService(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.serviceRepo.EXPECT().FindByID(ctx, int64(99)).
		Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.CreateBooking(ctx, &usecase.CreateBookingInput{
		ServiceID:     99,
		CustomerEmail: "customer@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestBookingService_ListOwnBookings(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	bookings := []*entity.Booking{{ID: 11, CustomerEmail: "customer@example.com"}}

	fx.bookingRepo.EXPECT().FindByCustomer(ctx, "customer@example.com").Return(bookings, nil)

	result, err := fx.service.ListOwnBookings(ctx, "customer@example.com")

	require.NoError(t, err)
	assert.Equal(t, bookings, result)
}

func TestBookingService_LeaveReview(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.bookingRepo.EXPECT().FindByID(ctx, int64(11)).
		Return(&entity.Booking{ID: 11, CustomerEmail: "customer@example.com"}, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			review.ID = 3

			return nil
		})

	review, err := fx.service.LeaveReview(ctx, &usecase.LeaveReviewInput{
		BookingID:     11,
		CustomerEmail: "customer@example.com",
		Rating:        5,
		Comment:       "Quick and tidy",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), review.ID)
	assert.Equal(t, 5, review.Rating)
}

func TestBookingService_LeaveReview_RatingOutOfRange(t *testing.T) {
	fx := createTestBookingService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.LeaveReview(context.Background(), &usecase.LeaveReviewInput{
			BookingID:     11,
			CustomerEmail: "customer@example.com",
			Rating:        rating,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
	}
}

func TestBookingService_LeaveReview_NotOwnBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.bookingRepo.EXPECT().FindByID(ctx, int64(11)).
		Return(&entity.Booking{ID: 11, CustomerEmail: "someone-else@example.com"}, nil)

	_, err := fx.service.LeaveReview(ctx, &usecase.LeaveReviewInput{
		BookingID:     11,
		CustomerEmail: "customer@example.com",
		Rating:        4,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingOwnershipViolation))
}

func TestBookingService_LeaveReview_MissingBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.bookingRepo.EXPECT().FindByID(ctx, int64(99)).
		Return(nil, repository.ErrBookingNotFound)

	_, err := fx.service.LeaveReview(ctx, &usecase.LeaveReviewInput{
		BookingID:     99,
		CustomerEmail: "customer@example.com",
		Rating:        4,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingNotFound))
}
