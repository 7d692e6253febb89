package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rehobothspace/venue-booking/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CreateBookingRequest struct {
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	EventDate       string `json:"event_date" form:"event_date"`
	EventTime       string `json:"event_time" form:"event_time"`
	NumberOfGuests  int    `json:"number_of_guests" form:"number_of_guests"`
	SpecialRequests string `json:"special_requests" form:"special_requests"`
}

// BookingCandidate is a validated booking request with parsed date and time.
type BookingCandidate struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	EventDate       time.Time
	EventTime       string
	NumberOfGuests  int
	SpecialRequests string
}

// Validate checks field constraints and returns either a candidate ready for
// the booking service or the list of failing fields. Nothing is persisted on
// failure.
func (r *CreateBookingRequest) Validate() (*BookingCandidate, []FieldError) {
	var errs []FieldError

	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, FieldError{Field: "first_name", Message: "first name is required"})
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, FieldError{Field: "last_name", Message: "last name is required"})
	}
	if !emailPattern.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "a valid email address is required"})
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone number is required"})
	}

	eventDate, err := time.Parse("2006-01-02", r.EventDate)
	if err != nil {
		errs = append(errs, FieldError{Field: "event_date", Message: "event date must be in YYYY-MM-DD format"})
	}
	if _, err := time.Parse("15:04", r.EventTime); err != nil {
		errs = append(errs, FieldError{Field: "event_time", Message: "event time must be in HH:MM format"})
	}
	if r.NumberOfGuests < 1 {
		errs = append(errs, FieldError{Field: "number_of_guests", Message: "at least one guest is required"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &BookingCandidate{
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		EventDate:       eventDate,
		EventTime:       r.EventTime,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}, nil
}

type CreateEventRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	EventType      string          `json:"event_type"`
	ImageURL       string          `json:"image_url"`
	Capacity       int             `json:"capacity"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	Available      *bool           `json:"available"`
}

func (r *CreateEventRequest) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Capacity <= 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "capacity must be greater than zero"})
	}
	if r.PricePerPerson.IsNegative() {
		errs = append(errs, FieldError{Field: "price_per_person", Message: "price per person must not be negative"})
	}
	if r.EventType != "" && !models.EventType(r.EventType).Valid() {
		errs = append(errs, FieldError{Field: "event_type", Message: "unknown event type"})
	}

	return errs
}

// UpdateEventRequest carries a partial update; nil fields are left unchanged.
type UpdateEventRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	EventType      *string          `json:"event_type"`
	ImageURL       *string          `json:"image_url"`
	Capacity       *int             `json:"capacity"`
	PricePerPerson *decimal.Decimal `json:"price_per_person"`
	Available      *bool            `json:"available"`
}

func (r *UpdateEventRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if r.Capacity != nil && *r.Capacity <= 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "capacity must be greater than zero"})
	}
	if r.PricePerPerson != nil && r.PricePerPerson.IsNegative() {
		errs = append(errs, FieldError{Field: "price_per_person", Message: "price per person must not be negative"})
	}
	if r.EventType != nil && !models.EventType(*r.EventType).Valid() {
		errs = append(errs, FieldError{Field: "event_type", Message: "unknown event type"})
	}

	return errs
}
