package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPaid      BookingStatus = "paid"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentReferencePrefix is the fixed prefix of every minted payment reference.
const PaymentReferencePrefix = "RHB"

type Booking struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	EventID         uint            `gorm:"not null" json:"event_id"`
	FirstName       string          `gorm:"size:100;not null" json:"first_name"`
	LastName        string          `gorm:"size:100;not null" json:"last_name"`
	Email           string          `gorm:"not null" json:"email"`
	Phone           string          `gorm:"size:20;not null" json:"phone"`
	EventDate       time.Time       `gorm:"type:date;not null" json:"event_date"`
	EventTime       string          `gorm:"size:5;not null" json:"event_time"`
	NumberOfGuests  int             `gorm:"not null" json:"number_of_guests"`
	SpecialRequests string          `gorm:"type:text" json:"special_requests,omitempty"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status          BookingStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Payment fields
	PaymentReference  string     `gorm:"size:200;uniqueIndex" json:"payment_reference"`
	PaymentStatus     bool       `gorm:"not null;default:false" json:"payment_status"`
	PaymentDate       *time.Time `json:"payment_date,omitempty"`
	PaystackReference string     `gorm:"size:200" json:"paystack_reference,omitempty"`

	// SMS notification status
	ConfirmationSMSSent bool `gorm:"not null;default:false" json:"confirmation_sms_sent"`
	PaymentSMSSent      bool `gorm:"not null;default:false" json:"payment_sms_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

// GeneratePaymentReference mints a reference of the form
// RHB-<14-digit timestamp>-<8-char uppercase id> and stores it on the booking.
// Uniqueness rests on the random suffix; collisions are not checked against
// existing rows.
func (b *Booking) GeneratePaymentReference() string {
	timestamp := time.Now().Format("20060102150405")
	uniqueID := strings.ToUpper(uuid.NewString()[:8])
	b.PaymentReference = fmt.Sprintf("%s-%s-%s", PaymentReferencePrefix, timestamp, uniqueID)
	return b.PaymentReference
}

func (b *Booking) CustomerName() string {
	return b.FirstName + " " + b.LastName
}
