package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.BookingCreated("group", "checkout")
	m.BookingCreated("group", "checkout")
	m.BookingCreated("duo", "guest")
	m.GuestOnboarding(OutcomeCreated)
	m.GuestOnboarding(OutcomeResumed)
	m.EvidenceDecision(DecisionApproved)
	m.LedgerConflict()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("group", "checkout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("duo", "guest")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.guestOnboardings.WithLabelValues(OutcomeResumed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.evidenceDecisions.WithLabelValues(DecisionRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerConflicts))
}

func TestBooking_Singleton(t *testing.T) {
	assert.Same(t, Booking(), Booking())
}
