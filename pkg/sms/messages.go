package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookingDetails carries the booking fields the message templates embed.
type BookingDetails struct {
	BookingID  uint
	FirstName  string
	EventName  string
	EventDate  time.Time
	EventTime  string // "15:04"
	TotalPrice decimal.Decimal
	Phone      string
}

func (d BookingDetails) formattedDate() string {
	return d.EventDate.Format("02/01/2006")
}

func (d BookingDetails) formattedTime() string {
	t, err := time.Parse("15:04", d.EventTime)
	if err != nil {
		return d.EventTime
	}
	return t.Format("03:04 PM")
}

// BookingConfirmationMessage renders the confirmation sent when a booking is
// received.
func BookingConfirmationMessage(d BookingDetails) string {
	return fmt.Sprintf(
		"Dear %s, your booking for %s on %s at %s has been confirmed! "+
			"Booking Ref: #%d. Total: GH₵%s. We look forward to serving you! - Rehoboth Space",
		d.FirstName, d.EventName, d.formattedDate(), d.formattedTime(),
		d.BookingID, d.TotalPrice.StringFixed(2),
	)
}

// PaymentConfirmationMessage renders the confirmation sent when a payment
// clears.
func PaymentConfirmationMessage(d BookingDetails) string {
	return fmt.Sprintf(
		"Payment confirmed! Dear %s, we have received your payment of GH₵%s for %s. "+
			"Booking Ref: #%d. Thank you! - Rehoboth Space",
		d.FirstName, d.TotalPrice.StringFixed(2), d.EventName, d.BookingID,
	)
}

// SendBookingConfirmation composes and sends the booking confirmation SMS.
func (c *Client) SendBookingConfirmation(ctx context.Context, d BookingDetails) *Response {
	return c.SendSMS(ctx, d.Phone, BookingConfirmationMessage(d), "")
}

// SendPaymentConfirmation composes and sends the payment confirmation SMS.
func (c *Client) SendPaymentConfirmation(ctx context.Context, d BookingDetails) *Response {
	return c.SendSMS(ctx, d.Phone, PaymentConfirmationMessage(d), "")
}
