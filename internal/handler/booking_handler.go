package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rehobothspace/venue-booking/internal/dto"
	"github.com/rehobothspace/venue-booking/internal/service"
)

const catalogPath = "/api/v1/events"

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/events/:id/bookings", h.CreateBooking)
	e.GET("/api/v1/payments/callback", h.PaymentCallback)
	e.GET("/api/v1/bookings/:id/success", h.BookingSuccess)
}

// CreateBooking handles the booking form submission. On success the customer
// is sent to the gateway's hosted checkout page.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cand, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "booking form is invalid",
			Errors:  fieldErrs,
		})
	}

	_, checkoutURL, err := h.svc.CreateBooking(c.Request().Context(), uint(eventID), cand)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrEventUnavailable):
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		case errors.Is(err, service.ErrCapacityExceeded):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPaymentInit):
			return echo.NewHTTPError(http.StatusBadGateway, "payment initialization failed. Please try again.")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Redirect(http.StatusSeeOther, checkoutURL)
}

// PaymentCallback handles the gateway's redirect after a checkout attempt.
// It is invoked by the gateway, not a browser session, so it takes only the
// reference query parameter.
func (h *BookingHandler) PaymentCallback(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return redirectWithError(c, "invalid payment reference")
	}

	booking, err := h.svc.ConfirmPayment(c.Request().Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return redirectWithError(c, "booking not found")
		case errors.Is(err, service.ErrPaymentNotSuccessful):
			return redirectWithError(c, "payment verification failed. Please contact us if you were charged.")
		default:
			return redirectWithError(c, "payment processing failed. Please contact us if you were charged.")
		}
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/bookings/%d/success", booking.ID))
}

// BookingSuccess renders the read-only confirmation for a completed booking.
func (h *BookingHandler) BookingSuccess(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func redirectWithError(c echo.Context, msg string) error {
	return c.Redirect(http.StatusFound, catalogPath+"?error="+url.QueryEscape(msg))
}
