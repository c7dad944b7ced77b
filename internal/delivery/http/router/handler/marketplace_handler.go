package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/delivery/http/response"
	"handyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketplaceHandler holds dependencies for catalog and booking handlers.
type MarketplaceHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewMarketplaceHandler is the constructor for MarketplaceHandler, injected by Fx.
func NewMarketplaceHandler(bookingUC usecase.BookingUsecase, logger *slog.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		bookingUC: bookingUC,
		logger:    logger,
	}
}

type createServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type createBookingRequest struct {
	ServiceID   int64     `json:"serviceId" validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

type leaveReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ListServices returns the public service catalog.
func (h *MarketplaceHandler) ListServices(c echo.Context) error {
	services, err := h.bookingUC.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}

// CreateService publishes a new offering for the authenticated vendor.
func (h *MarketplaceHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	service, err := h.bookingUC.CreateService(c.Request().Context(), &usecase.CreateServiceInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ProviderEmail: deliverycontext.GetSubject(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, service, "Service published")
}

// CreateBooking books a service for the authenticated customer.
func (h *MarketplaceHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), &usecase.CreateBookingInput{
		ServiceID:     req.ServiceID,
		CustomerEmail: deliverycontext.GetSubject(c),
		ScheduledAt:   req.ScheduledAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking created")
}

// ListBookings returns the authenticated customer's bookings.
func (h *MarketplaceHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListOwnBookings(c.Request().Context(), deliverycontext.GetSubject(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "")
}

// LeaveReview records a rating on one of the customer's bookings.
func (h *MarketplaceHandler) LeaveReview(c echo.Context) error {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking id")
	}

	var req leaveReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.bookingUC.LeaveReview(c.Request().Context(), &usecase.LeaveReviewInput{
		BookingID:     bookingID,
		CustomerEmail: deliverycontext.GetSubject(c),
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review recorded")
}
