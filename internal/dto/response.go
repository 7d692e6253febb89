package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rehobothspace/venue-booking/internal/models"
)

type EventResponse struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	EventType      models.EventType `json:"event_type"`
	ImageURL       string           `json:"image_url,omitempty"`
	Capacity       int              `json:"capacity"`
	PricePerPerson decimal.Decimal  `json:"price_per_person"`
	Available      bool             `json:"available"`
	CreatedAt      time.Time        `json:"created_at"`
}

// EventDetailResponse carries the public key the checkout page needs alongside
// the event itself.
type EventDetailResponse struct {
	Event             EventResponse `json:"event"`
	PaystackPublicKey string        `json:"paystack_public_key,omitempty"`
}

type BookingResponse struct {
	ID               uint                 `json:"id"`
	EventID          uint                 `json:"event_id"`
	FirstName        string               `json:"first_name"`
	LastName         string               `json:"last_name"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	EventDate        string               `json:"event_date"`
	EventTime        string               `json:"event_time"`
	NumberOfGuests   int                  `json:"number_of_guests"`
	SpecialRequests  string               `json:"special_requests,omitempty"`
	TotalPrice       decimal.Decimal      `json:"total_price"`
	Status           models.BookingStatus `json:"status"`
	PaymentReference string               `json:"payment_reference"`
	PaymentStatus    bool                 `json:"payment_status"`
	PaymentDate      *time.Time           `json:"payment_date,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`

	Event *EventResponse `json:"event,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		EventType:      e.EventType,
		ImageURL:       e.ImageURL,
		Capacity:       e.Capacity,
		PricePerPerson: e.PricePerPerson,
		Available:      e.Available,
		CreatedAt:      e.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID,
		EventID:          b.EventID,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		EventDate:        b.EventDate.Format("2006-01-02"),
		EventTime:        b.EventTime,
		NumberOfGuests:   b.NumberOfGuests,
		SpecialRequests:  b.SpecialRequests,
		TotalPrice:       b.TotalPrice,
		Status:           b.Status,
		PaymentReference: b.PaymentReference,
		PaymentStatus:    b.PaymentStatus,
		PaymentDate:      b.PaymentDate,
		CreatedAt:        b.CreatedAt,
	}
	if b.Event != nil {
		event := ToEventResponse(b.Event)
		resp.Event = &event
	}
	return resp
}
