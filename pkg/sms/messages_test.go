package sms

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func details() BookingDetails {
	return BookingDetails{
		BookingID:  12,
		FirstName:  "Ama",
		EventName:  "Garden Wedding Package",
		EventDate:  time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		EventTime:  "14:30",
		TotalPrice: decimal.NewFromInt(2000),
		Phone:      "0241234567",
	}
}

func TestBookingConfirmationMessage(t *testing.T) {
	msg := BookingConfirmationMessage(details())

	assert.Contains(t, msg, "Dear Ama")
	assert.Contains(t, msg, "Garden Wedding Package")
	assert.Contains(t, msg, "20/03/2026")
	assert.Contains(t, msg, "02:30 PM")
	assert.Contains(t, msg, "Booking Ref: #12")
	assert.Contains(t, msg, "GH₵2000.00")
}

func TestPaymentConfirmationMessage(t *testing.T) {
	msg := PaymentConfirmationMessage(details())

	assert.Contains(t, msg, "Payment confirmed!")
	assert.Contains(t, msg, "GH₵2000.00")
	assert.Contains(t, msg, "Garden Wedding Package")
	assert.Contains(t, msg, "Booking Ref: #12")
}

func TestFormattedTime_FallsBackOnUnparseableInput(t *testing.T) {
	d := details()
	d.EventTime = "half past two"

	msg := BookingConfirmationMessage(d)
	assert.Contains(t, msg, "half past two")
}
