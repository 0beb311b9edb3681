package request

import (
	"errors"
	"testing"
	"time"

	"tour_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCheckoutRequest_ToInput(t *testing.T) {
	r := CheckoutRequest{
		Provider:          " Card ",
		ProviderPaymentID: "9001",
		PayerEmail:        "main@example.com",
		TourPackageID:     "pkg-1",
		TourDate:          "2026-08-01",
		BookingType:       "GROUP",
		PaymentTermID:     "term-4",
		AmountPaid:        decimal.NewFromInt(250),
		GuestEmails:       []string{"ana@example.com", "ben@example.com"},
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Provider != entities.PaymentProviderCard {
		t.Fatalf("expected card provider, got %q", in.Provider)
	}
	if in.BookingType != entities.BookingTypeGroup {
		t.Fatalf("expected group booking, got %q", in.BookingType)
	}
	if !in.TourDate.Equal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected tour date %v", in.TourDate)
	}
	if len(in.GuestEmails) != 2 {
		t.Fatalf("expected 2 guests, got %d", len(in.GuestEmails))
	}

	r.TourDate = "01/08/2026"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestInstallmentOverrideRequest_ResolveDatePaid(t *testing.T) {
	got, err := InstallmentOverrideRequest{}.ResolveDatePaid()
	if err != nil || got != nil {
		t.Fatalf("expected nil date for null, got %v (%v)", got, err)
	}

	ts := "2026-03-09T22:15:00-03:00"
	got, err = InstallmentOverrideRequest{DatePaid: &ts}.ResolveDatePaid()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC calendar date 2026-03-10, got %v", got)
	}

	bad := "yesterday"
	if _, err := (InstallmentOverrideRequest{DatePaid: &bad}).ResolveDatePaid(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGuestBookingRequest_ToInput(t *testing.T) {
	r := GuestBookingRequest{
		PaymentDocID:    " rec-1 ",
		ParentBookingID: "doc-main",
		GuestEmail:      "Ana@Example.com",
		GuestData:       GuestData{FirstName: " Ana ", LastName: "Reyes"},
	}
	in := r.ToInput()
	if in.PaymentDocID != "rec-1" || in.FirstName != "Ana" || in.LastName != "Reyes" {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestPaymentTermRequest_ToEntity(t *testing.T) {
	cfg := PaymentTermRequest{Name: "Monthly", PaymentType: "Monthly_Scheduled", MonthsRequired: 2, MonthlyPercentages: []float64{50, 50}}.ToEntity()
	if !cfg.IsActive {
		t.Fatalf("expected terms to default to active")
	}
	if cfg.PaymentType != entities.PaymentTypeMonthlyScheduled {
		t.Fatalf("unexpected payment type %q", cfg.PaymentType)
	}

	inactive := false
	cfg = PaymentTermRequest{Name: "Full", PaymentType: "full_payment", IsActive: &inactive}.ToEntity()
	if cfg.IsActive {
		t.Fatalf("expected explicit is_active=false to be kept")
	}
}
