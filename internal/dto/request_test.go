package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		FirstName:      "Ama",
		LastName:       "Mensah",
		Email:          "ama@example.com",
		Phone:          "0241234567",
		EventDate:      "2026-10-17",
		EventTime:      "14:30",
		NumberOfGuests: 10,
	}
}

func TestValidate_ReturnsCandidate(t *testing.T) {
	req := validRequest()

	cand, errs := req.Validate()

	assert.Nil(t, errs)
	assert.Equal(t, "Ama", cand.FirstName)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), cand.EventDate)
	assert.Equal(t, "14:30", cand.EventTime)
	assert.Equal(t, 10, cand.NumberOfGuests)
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	req := validRequest()
	req.FirstName = "  Ama "
	req.Phone = " 0241234567 "

	cand, errs := req.Validate()

	assert.Nil(t, errs)
	assert.Equal(t, "Ama", cand.FirstName)
	assert.Equal(t, "0241234567", cand.Phone)
}

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	req := CreateBookingRequest{
		Email:          "not-an-email",
		EventDate:      "17/10/2026",
		EventTime:      "2pm",
		NumberOfGuests: 0,
	}

	cand, errs := req.Validate()

	assert.Nil(t, cand)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"first_name", "last_name", "email", "phone", "event_date", "event_time", "number_of_guests"} {
		assert.True(t, fields[want], "expected a field error for %s", want)
	}
}

func TestValidate_RejectsBadEmail(t *testing.T) {
	for _, email := range []string{"", "plain", "missing@tld", "two@@example.com", "sp ace@example.com"} {
		req := validRequest()
		req.Email = email

		cand, errs := req.Validate()
		assert.Nil(t, cand, "email %q should fail", email)
		assert.NotEmpty(t, errs)
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	req := CreateEventRequest{Name: "Garden Wedding Package", Capacity: 50, EventType: "wedding"}
	assert.Nil(t, req.Validate())

	req.Capacity = 0
	errs := req.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "capacity", errs[0].Field)

	req = CreateEventRequest{Name: "X", Capacity: 10, EventType: "festival"}
	errs = req.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "event_type", errs[0].Field)
}

func TestUpdateEventRequest_Validate(t *testing.T) {
	empty := ""
	zero := 0

	req := UpdateEventRequest{}
	assert.Nil(t, req.Validate())

	req = UpdateEventRequest{Name: &empty}
	assert.NotEmpty(t, req.Validate())

	req = UpdateEventRequest{Capacity: &zero}
	assert.NotEmpty(t, req.Validate())
}
