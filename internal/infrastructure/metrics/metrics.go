package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeCreated   = "created"
	OutcomeResumed   = "resumed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
	DecisionNoop     = "noop"
)

// BookingMetrics holds the counters exported on /metrics.
type BookingMetrics struct {
	bookingsCreated   *prometheus.CounterVec
	guestOnboardings  *prometheus.CounterVec
	evidenceDecisions *prometheus.CounterVec
	ledgerConflicts   prometheus.Counter
}

var (
	bookingMetricsOnce sync.Once
	bookingMetrics     *BookingMetrics
)

// Booking returns the process-wide metrics registered on the default registerer.
func Booking() *BookingMetrics {
	bookingMetricsOnce.Do(func() {
		bookingMetrics = NewBookingMetrics(prometheus.DefaultRegisterer)
	})
	return bookingMetrics
}

func NewBookingMetrics(registerer prometheus.Registerer) *BookingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	m := &BookingMetrics{
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tour_billing_bookings_created_total",
			Help: "Bookings created by booking type and origin.",
		}, []string{"booking_type", "origin"}),
		guestOnboardings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tour_billing_guest_onboarding_total",
			Help: "Guest onboarding attempts by outcome.",
		}, []string{"outcome"}),
		evidenceDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tour_billing_evidence_decisions_total",
			Help: "Payment evidence reviews by decision.",
		}, []string{"decision"}),
		ledgerConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tour_billing_ledger_conflicts_total",
			Help: "Booking ledger writes that lost an optimistic version check.",
		}),
	}
	registerer.MustRegister(m.bookingsCreated, m.guestOnboardings, m.evidenceDecisions, m.ledgerConflicts)
	return m
}

func (m *BookingMetrics) BookingCreated(bookingType, origin string) {
	m.bookingsCreated.WithLabelValues(bookingType, origin).Inc()
}

func (m *BookingMetrics) GuestOnboarding(outcome string) {
	m.guestOnboardings.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) EvidenceDecision(decision string) {
	m.evidenceDecisions.WithLabelValues(decision).Inc()
}

func (m *BookingMetrics) LedgerConflict() {
	m.ledgerConflicts.Inc()
}
