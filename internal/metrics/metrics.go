package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total bookings persisted in pending state",
		},
	)

	PaymentsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_confirmed_total",
			Help: "Total payments verified and reconciled",
		},
	)

	PaymentInitFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_init_failures_total",
			Help: "Total failed gateway initialization attempts",
		},
	)

	SMSSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_sent_total",
			Help: "Total SMS messages accepted by the gateway",
		},
		[]string{"kind"},
	)

	SMSFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_failed_total",
			Help: "Total SMS messages the gateway rejected or that failed in transit",
		},
		[]string{"kind"},
	)
)
