package usecase

import (
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testMetrics() *metrics.BookingMetrics {
	return metrics.NewBookingMetrics(prometheus.NewRegistry())
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func groupRecord() entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:                "rec-1",
		Provider:          entities.PaymentProviderCard,
		ProviderPaymentID: "9001",
		PayerEmail:        "main@example.com",
		TourPackageID:     "pkg-1",
		TourDate:          day(2026, time.August, 1),
		BookingType:       entities.BookingTypeGroup,
		AmountPaid:        decimal.NewFromInt(250),
		Currency:          "USD",
		BookingDocumentID: "doc-main",
		GroupID:           "grp-1",
		GuestInvitations: []entities.GuestInvitation{
			{Email: "ana@example.com", Status: entities.InvitationStatusPending},
			{Email: "ben@example.com", Status: entities.InvitationStatusPending},
		},
	}
}

func mainBooking() entities.Booking {
	paid := day(2026, time.March, 1)
	discounted := decimal.NewFromInt(1000)
	return entities.Booking{
		DocumentID:         "doc-main",
		BookingID:          "2608-0001",
		GroupID:            "grp-1",
		MemberCode:         "GB-MM-0001-001",
		BookingType:        entities.BookingTypeGroup,
		IsMainBooker:       true,
		Email:              "main@example.com",
		FirstName:          "Mara",
		LastName:           "Mendoza",
		TourPackageID:      "pkg-1",
		TourName:           "Siargao Island Escape",
		TourDate:           day(2026, time.August, 1),
		ReturnDate:         day(2026, time.August, 5),
		OriginalTourCost:   decimal.NewFromInt(1200),
		DiscountedTourCost: &discounted,
		Currency:           "USD",
		ReservationFee:     decimal.NewFromInt(250),
		PaymentPlan:        "Four months",
		PaymentTermID:      "term-4",
		Installments: []entities.Installment{
			{Term: "P1", Amount: decimal.NewFromInt(250), DueDate: day(2026, time.April, 2), DatePaid: &paid, PaidByEvidenceID: "ev-0"},
			{Term: "P2", Amount: decimal.NewFromInt(250), DueDate: day(2026, time.May, 2)},
			{Term: "P3", Amount: decimal.NewFromInt(250), DueDate: day(2026, time.June, 2)},
			{Term: "P4", Amount: decimal.NewFromInt(250), DueDate: day(2026, time.July, 2)},
		},
		BookingStatus:   entities.BookingStatusPartiallyPaid,
		PaymentProgress: 25,
		SourcePaymentID: "rec-1",
		Version:         3,
	}
}

func pendingEvidence() entities.PaymentEvidence {
	return entities.PaymentEvidence{
		ID:                "ev-1",
		BookingDocumentID: "doc-main",
		InstallmentTerm:   "P2",
		Amount:            decimal.NewFromInt(250),
		Currency:          "USD",
		ScreenshotRef:     "s3://evidence/evidence/doc-main/ev-1.png",
		Status:            entities.EvidenceStatusPending,
		CreatedAt:         day(2026, time.March, 9),
	}
}

func monthlyTermConfig() entities.PaymentTermConfiguration {
	return entities.PaymentTermConfiguration{
		ID:                 "term-4",
		Name:               "Four months",
		PaymentType:        entities.PaymentTypeMonthlyScheduled,
		MonthsRequired:     4,
		MonthlyPercentages: []float64{25, 25, 25, 25},
		IsActive:           true,
		SortOrder:          2,
	}
}

func tourPackage() entities.TourPackage {
	discounted := decimal.NewFromInt(1000)
	return entities.TourPackage{
		ID:             "pkg-1",
		Name:           "Siargao Island Escape",
		TourDates:      []time.Time{day(2026, time.August, 1), day(2026, time.September, 5)},
		DurationDays:   5,
		OriginalCost:   decimal.NewFromInt(1200),
		DiscountedCost: &discounted,
		ReservationFee: decimal.NewFromInt(250),
		Currency:       "USD",
	}
}
