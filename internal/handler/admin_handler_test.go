package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rehobothspace/venue-booking/internal/dto"
	"github.com/rehobothspace/venue-booking/internal/models"
)

func TestAdminCreateEvent_Success(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, event *models.Event) error {
			event.ID = 1
			return nil
		},
	}

	e := echo.New()
	body := `{
		"name": "Garden Wedding Package",
		"description": "Outdoor ceremony and reception",
		"event_type": "wedding",
		"capacity": 50,
		"price_per_person": 200
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc, nil)
	err := h.CreateEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":true`)
}

func TestAdminCreateEvent_RejectsZeroCapacity(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, event *models.Event) error {
			t.Fatal("invalid event must not reach the service")
			return nil
		},
	}

	e := echo.New()
	body := `{"name": "Broken", "capacity": 0, "price_per_person": 200}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc, nil)
	err := h.CreateEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "capacity")
}

func TestAdminUpdateEvent_TogglesAvailability(t *testing.T) {
	svc := &mockEventService{
		updateFn: func(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*models.Event, error) {
			assert.Equal(t, uint(1), id)
			assert.NotNil(t, req.Available)
			assert.False(t, *req.Available)
			return &models.Event{ID: 1, Name: "Garden Wedding Package", Capacity: 50, Available: false}, nil
		},
	}

	e := echo.New()
	body := `{"available": false}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/events/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewAdminHandler(svc, nil)
	err := h.UpdateEvent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":false`)
}

func TestAdminListBookings_FiltersByStatus(t *testing.T) {
	bookingSvc := &mockBookingService{
		listFn: func(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
			assert.NotNil(t, status)
			assert.Equal(t, models.StatusPaid, *status)
			return []models.Booking{
				{ID: 7, Status: models.StatusPaid, PaymentStatus: true, TotalPrice: decimal.NewFromInt(2000)},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=paid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(&mockEventService{}, bookingSvc)
	err := h.ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"paid"`)
}
