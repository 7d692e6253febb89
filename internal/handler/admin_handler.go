package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rehobothspace/venue-booking/internal/dto"
	"github.com/rehobothspace/venue-booking/internal/models"
	"github.com/rehobothspace/venue-booking/internal/service"
)

// AdminHandler covers the operator surface: event management and booking
// oversight. End-user flows never delete events; operators toggle
// availability instead.
type AdminHandler struct {
	eventSvc   service.EventService
	bookingSvc service.BookingService
}

func NewAdminHandler(eventSvc service.EventService, bookingSvc service.BookingService) *AdminHandler {
	return &AdminHandler{eventSvc: eventSvc, bookingSvc: bookingSvc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/v1/admin")
	admin.POST("/events", h.CreateEvent)
	admin.PUT("/events/:id", h.UpdateEvent)
	admin.GET("/events", h.ListEvents)
	admin.GET("/bookings", h.ListBookings)
}

func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if fieldErrs := req.Validate(); fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "event is invalid",
			Errors:  fieldErrs,
		})
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	event := &models.Event{
		Name:           req.Name,
		Description:    req.Description,
		EventType:      models.EventType(req.EventType),
		ImageURL:       req.ImageURL,
		Capacity:       req.Capacity,
		PricePerPerson: req.PricePerPerson.Round(2),
		Available:      available,
	}

	if err := h.eventSvc.CreateEvent(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *AdminHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if fieldErrs := req.Validate(); fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "event update is invalid",
			Errors:  fieldErrs,
		})
	}

	event, err := h.eventSvc.UpdateEvent(c.Request().Context(), uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *AdminHandler) ListEvents(c echo.Context) error {
	events, err := h.eventSvc.ListAllEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListBookings(c echo.Context) error {
	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		status = &bs
	}

	bookings, err := h.bookingSvc.ListBookings(c.Request().Context(), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}
