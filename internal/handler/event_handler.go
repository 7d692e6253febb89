package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rehobothspace/venue-booking/internal/dto"
	"github.com/rehobothspace/venue-booking/internal/service"
)

type EventHandler struct {
	svc service.EventService

	// paystackPublicKey is embedded in the detail response for the checkout
	// page.
	paystackPublicKey string
}

func NewEventHandler(svc service.EventService, paystackPublicKey string) *EventHandler {
	return &EventHandler{svc: svc, paystackPublicKey: paystackPublicKey}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/events", h.ListEvents)
	e.GET("/api/v1/events/:id", h.GetEvent)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	event, err := h.svc.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	}

	return c.JSON(http.StatusOK, dto.EventDetailResponse{
		Event:             dto.ToEventResponse(event),
		PaystackPublicKey: h.paystackPublicKey,
	})
}
