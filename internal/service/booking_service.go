package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rehobothspace/venue-booking/internal/dto"
	"github.com/rehobothspace/venue-booking/internal/metrics"
	"github.com/rehobothspace/venue-booking/internal/models"
	"github.com/rehobothspace/venue-booking/internal/repository"
	"github.com/rehobothspace/venue-booking/pkg/paystack"
	"github.com/rehobothspace/venue-booking/pkg/rabbitmq"
	"github.com/rehobothspace/venue-booking/pkg/sms"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventUnavailable     = errors.New("event is not available for booking")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrPaymentInit          = errors.New("payment initialization failed")
	ErrPaymentNotSuccessful = errors.New("payment verification failed")
)

// PaymentGateway is the slice of the Paystack client the booking flow needs.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, email string, amount decimal.Decimal, reference, callbackURL string, metadata map[string]any) *paystack.Response
	VerifyTransaction(ctx context.Context, reference string) *paystack.Response
}

// Notifier sends the templated booking and payment confirmation messages.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, d sms.BookingDetails) *sms.Response
	SendPaymentConfirmation(ctx context.Context, d sms.BookingDetails) *sms.Response
}

type BookingService interface {
	// CreateBooking validates the candidate against the event, persists a
	// pending booking and returns it with the gateway checkout URL.
	CreateBooking(ctx context.Context, eventID uint, cand *dto.BookingCandidate) (*models.Booking, string, error)
	// ConfirmPayment verifies a gateway reference and reconciles the matching
	// booking's payment state.
	ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	gateway     PaymentGateway
	notifier    Notifier
	publisher   *rabbitmq.Publisher
	callbackURL string
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	gateway PaymentGateway,
	notifier Notifier,
	publisher *rabbitmq.Publisher,
	callbackURL string,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		gateway:     gateway,
		notifier:    notifier,
		publisher:   publisher,
		callbackURL: callbackURL,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, eventID uint, cand *dto.BookingCandidate) (*models.Booking, string, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, "", ErrEventNotFound
	}
	if !event.Available {
		return nil, "", ErrEventUnavailable
	}

	if cand.NumberOfGuests > event.Capacity {
		return nil, "", fmt.Errorf("%w: this event has a maximum capacity of %d guests", ErrCapacityExceeded, event.Capacity)
	}

	totalPrice := event.PricePerPerson.Mul(decimal.NewFromInt(int64(cand.NumberOfGuests)))

	booking := &models.Booking{
		EventID:         event.ID,
		FirstName:       cand.FirstName,
		LastName:        cand.LastName,
		Email:           cand.Email,
		Phone:           cand.Phone,
		EventDate:       cand.EventDate,
		EventTime:       cand.EventTime,
		NumberOfGuests:  cand.NumberOfGuests,
		SpecialRequests: cand.SpecialRequests,
		TotalPrice:      totalPrice,
		Status:          models.StatusPending,
	}
	booking.GeneratePaymentReference()

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, "", fmt.Errorf("create booking: %w", err)
	}
	booking.Event = event
	metrics.BookingsCreated.Inc()

	metadata := map[string]any{
		"booking_id":       booking.ID,
		"event_name":       event.Name,
		"customer_name":    booking.CustomerName(),
		"event_date":       booking.EventDate.Format("2006-01-02"),
		"number_of_guests": booking.NumberOfGuests,
	}

	resp := s.gateway.InitializeTransaction(ctx, booking.Email, totalPrice, booking.PaymentReference, s.callbackURL, metadata)
	if !resp.Status {
		// The pending row stays put; there is no cleanup or retry.
		log.Printf("[Booking] gateway initialize failed for %s: %s", booking.PaymentReference, resp.Message)
		metrics.PaymentInitFailures.Inc()
		return booking, "", ErrPaymentInit
	}

	s.sendBookingConfirmation(ctx, booking, event)
	s.publish(rabbitmq.RoutingKeyBookingCreated, booking)

	return booking, resp.Data.AuthorizationURL, nil
}

func (s *bookingService) ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error) {
	resp := s.gateway.VerifyTransaction(ctx, reference)
	if !resp.Status || resp.Data.Status != "success" {
		return nil, ErrPaymentNotSuccessful
	}

	booking, err := s.bookingRepo.FindByPaymentReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking by reference: %w", err)
	}

	now := time.Now()
	booking.PaymentStatus = true
	booking.Status = models.StatusPaid
	booking.PaymentDate = &now
	booking.PaystackReference = resp.Data.Reference

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking payment state: %w", err)
	}
	metrics.PaymentsConfirmed.Inc()

	s.sendPaymentConfirmation(ctx, booking)
	s.publish(rabbitmq.RoutingKeyBookingPaid, booking)

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, status)
}

// sendBookingConfirmation is best-effort: a failed send is logged and the
// sent flag stays false.
func (s *bookingService) sendBookingConfirmation(ctx context.Context, booking *models.Booking, event *models.Event) {
	if s.notifier == nil {
		return
	}

	resp := s.notifier.SendBookingConfirmation(ctx, smsDetails(booking, event.Name))
	if !resp.OK() {
		log.Printf("[SMS] booking confirmation failed for booking %d: %s", booking.ID, resp.Message)
		metrics.SMSFailed.WithLabelValues("confirmation").Inc()
		return
	}
	metrics.SMSSent.WithLabelValues("confirmation").Inc()

	booking.ConfirmationSMSSent = true
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		log.Printf("[SMS] failed to record confirmation flag for booking %d: %v", booking.ID, err)
	}
}

// sendPaymentConfirmation is best-effort and must never undo the payment
// state already persisted.
func (s *bookingService) sendPaymentConfirmation(ctx context.Context, booking *models.Booking) {
	if s.notifier == nil {
		return
	}

	eventName := ""
	if booking.Event != nil {
		eventName = booking.Event.Name
	}

	resp := s.notifier.SendPaymentConfirmation(ctx, smsDetails(booking, eventName))
	if !resp.OK() {
		log.Printf("[SMS] payment confirmation failed for booking %d: %s", booking.ID, resp.Message)
		metrics.SMSFailed.WithLabelValues("payment").Inc()
		return
	}
	metrics.SMSSent.WithLabelValues("payment").Inc()

	booking.PaymentSMSSent = true
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		log.Printf("[SMS] failed to record payment flag for booking %d: %v", booking.ID, err)
	}
}

func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, booking); err != nil {
		log.Printf("[RabbitMQ] publish %s for booking %d failed: %v", routingKey, booking.ID, err)
	}
}

func smsDetails(booking *models.Booking, eventName string) sms.BookingDetails {
	return sms.BookingDetails{
		BookingID:  booking.ID,
		FirstName:  booking.FirstName,
		EventName:  eventName,
		EventDate:  booking.EventDate,
		EventTime:  booking.EventTime,
		TotalPrice: booking.TotalPrice,
		Phone:      booking.Phone,
	}
}
