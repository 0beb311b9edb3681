package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/metrics"
	mock_interfaces "tour_billing/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func newGuestUseCase(t *testing.T) (*GuestBookingUseCase, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIPaymentRecordRepository, *prometheus.Registry) {
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
	reg := prometheus.NewRegistry()
	uc := NewGuestBookingUseCase(bookings, records, metrics.NewBookingMetrics(reg))
	uc.now = fixedClock
	return uc, bookings, records, reg
}

func anaInput() GuestOnboardingInput {
	return GuestOnboardingInput{
		PaymentDocID:    "rec-1",
		ParentBookingID: "doc-main",
		GuestEmail:      " Ana@Example.com",
		FirstName:       "Ana",
		LastName:        "Reyes",
	}
}

var anaDocID = guestBookingDocumentID("rec-1", "ana@example.com")

func anaBooking() entities.Booking {
	return entities.Booking{
		DocumentID:      anaDocID,
		BookingID:       "2608-0002",
		GroupID:         "grp-1",
		Email:           "ana@example.com",
		SourcePaymentID: "rec-1",
	}
}

func TestGuestBookingUseCase_OnboardGuest_Success(t *testing.T) {
	uc, bookings, records, reg := newGuestUseCase(t)
	docID := anaDocID
	parent := mainBooking()

	records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
	bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(entities.Booking{}, nil)
	bookings.EXPECT().GetByGroupAndEmail(gomock.Any(), "grp-1", "ana@example.com").Return(entities.Booking{}, nil)
	bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(parent, nil)
	bookings.EXPECT().CountByTourPackage(gomock.Any(), "pkg-1").Return(1, nil)
	bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			if b.DocumentID != docID || b.IsMainBooker || b.GroupID != "grp-1" || b.Version != 1 {
				t.Fatalf("unexpected guest booking: %+v", b)
			}
			if b.SourcePaymentID != "rec-1" || b.PaymentTermID != "term-4" || b.TourName != parent.TourName {
				t.Fatalf("parent terms not inherited: %+v", b)
			}
			if len(b.Installments) != len(parent.Installments) {
				t.Fatalf("expected %d installments, got %d", len(parent.Installments), len(b.Installments))
			}
			for i, inst := range b.Installments {
				if inst.IsPaid() || inst.PaidByEvidenceID != "" {
					t.Fatalf("inherited installment %s must start unpaid", inst.Term)
				}
				if !inst.Amount.Equal(parent.Installments[i].Amount) || inst.DueDate != parent.Installments[i].DueDate {
					t.Fatalf("installment %s differs from parent", inst.Term)
				}
			}
			if b.BookingStatus != entities.BookingStatusReserved || b.PaymentProgress != 0 {
				t.Fatalf("unexpected ledger %s %d", b.BookingStatus, b.PaymentProgress)
			}
			if b.BookingID != "2608-0002" || !strings.HasPrefix(b.MemberCode, "GB-AR-") {
				t.Fatalf("unexpected codes %s %s", b.BookingID, b.MemberCode)
			}
			return b, nil
		})
	records.EXPECT().AcceptInvitation(gomock.Any(), "rec-1", 0, "ana@example.com", docID, fixedNow).Return(entities.PaymentRecord{}, nil)

	res, err := uc.OnboardGuest(context.Background(), anaInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BookingDocumentID != docID || res.BookingID != "2608-0002" || res.Resumed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !parent.Installments[0].IsPaid() {
		t.Fatalf("parent installments must not be modified")
	}

	expected := `
# HELP tour_billing_bookings_created_total Bookings created by booking type and origin.
# TYPE tour_billing_bookings_created_total counter
tour_billing_bookings_created_total{booking_type="group",origin="guest"} 1
# HELP tour_billing_guest_onboarding_total Guest onboarding attempts by outcome.
# TYPE tour_billing_guest_onboarding_total counter
tour_billing_guest_onboarding_total{outcome="created"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"tour_billing_bookings_created_total", "tour_billing_guest_onboarding_total"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestGuestBookingUseCase_OnboardGuest_Resume(t *testing.T) {
	t.Run("booking exists and invitation still pending", func(t *testing.T) {
		uc, bookings, records, _ := newGuestUseCase(t)
		existing := anaBooking()

		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(existing, nil)
		records.EXPECT().AcceptInvitation(gomock.Any(), "rec-1", 0, "ana@example.com", existing.DocumentID, fixedNow).Return(entities.PaymentRecord{}, nil)

		res, err := uc.OnboardGuest(context.Background(), anaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Resumed || res.BookingDocumentID != existing.DocumentID {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("group index lags behind the stored booking", func(t *testing.T) {
		uc, bookings, records, reg := newGuestUseCase(t)
		existing := anaBooking()

		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(existing, nil)
		bookings.EXPECT().GetByGroupAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		records.EXPECT().AcceptInvitation(gomock.Any(), "rec-1", 0, "ana@example.com", existing.DocumentID, fixedNow).Return(entities.PaymentRecord{}, nil)

		res, err := uc.OnboardGuest(context.Background(), anaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Resumed || res.BookingID != existing.BookingID {
			t.Fatalf("unexpected result: %+v", res)
		}

		expected := `
# HELP tour_billing_guest_onboarding_total Guest onboarding attempts by outcome.
# TYPE tour_billing_guest_onboarding_total counter
tour_billing_guest_onboarding_total{outcome="resumed"} 1
`
		if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "tour_billing_guest_onboarding_total"); err != nil {
			t.Fatalf("unexpected metrics: %v", err)
		}
	})

	t.Run("create loses race to a concurrent attempt", func(t *testing.T) {
		uc, bookings, records, _ := newGuestUseCase(t)
		existing := anaBooking()

		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		gomock.InOrder(
			bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(entities.Booking{}, nil),
			bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(existing, nil),
		)
		bookings.EXPECT().GetByGroupAndEmail(gomock.Any(), "grp-1", "ana@example.com").Return(entities.Booking{}, nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(mainBooking(), nil)
		bookings.EXPECT().CountByTourPackage(gomock.Any(), "pkg-1").Return(1, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, entities.ErrDuplicateBooking)
		records.EXPECT().AcceptInvitation(gomock.Any(), "rec-1", 0, "ana@example.com", existing.DocumentID, fixedNow).Return(entities.PaymentRecord{}, nil)

		res, err := uc.OnboardGuest(context.Background(), anaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Resumed || res.BookingDocumentID != existing.DocumentID {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestGuestBookingUseCase_OnboardGuest_Rejections(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc, _, _, _ := newGuestUseCase(t)
		in := anaInput()
		in.GuestEmail = "not-an-email"

		_, err := uc.OnboardGuest(context.Background(), in)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("payment record missing", func(t *testing.T) {
		uc, _, records, _ := newGuestUseCase(t)
		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PaymentRecord{}, nil)

		_, err := uc.OnboardGuest(context.Background(), anaInput())
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("email not invited", func(t *testing.T) {
		uc, _, records, _ := newGuestUseCase(t)
		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		in := anaInput()
		in.GuestEmail = "zed@example.com"

		_, err := uc.OnboardGuest(context.Background(), in)
		if !errors.Is(err, entities.ErrInvitationInvalid) {
			t.Fatalf("expected ErrInvitationInvalid, got %v", err)
		}
	})

	t.Run("email already booked from another payment", func(t *testing.T) {
		uc, bookings, records, _ := newGuestUseCase(t)
		other := anaBooking()
		other.SourcePaymentID = "rec-other"
		other.DocumentID = "doc-other"
		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(entities.Booking{}, nil)
		bookings.EXPECT().GetByGroupAndEmail(gomock.Any(), "grp-1", "ana@example.com").Return(other, nil)

		_, err := uc.OnboardGuest(context.Background(), anaInput())
		if !errors.Is(err, entities.ErrDuplicateBooking) {
			t.Fatalf("expected ErrDuplicateBooking, got %v", err)
		}
	})

	t.Run("invitation already accepted", func(t *testing.T) {
		uc, bookings, records, reg := newGuestUseCase(t)
		rec := groupRecord()
		rec.GuestInvitations[0].Status = entities.InvitationStatusAccepted
		rec.GuestInvitations[0].GuestBookingID = anaDocID
		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(rec, nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), gomock.Any()).Times(0)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		records.EXPECT().AcceptInvitation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.OnboardGuest(context.Background(), anaInput())
		if !errors.Is(err, entities.ErrInvitationInvalid) {
			t.Fatalf("expected ErrInvitationInvalid, got %v", err)
		}

		expected := `
# HELP tour_billing_guest_onboarding_total Guest onboarding attempts by outcome.
# TYPE tour_billing_guest_onboarding_total counter
tour_billing_guest_onboarding_total{outcome="rejected"} 1
`
		if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "tour_billing_guest_onboarding_total"); err != nil {
			t.Fatalf("unexpected metrics: %v", err)
		}
	})

	t.Run("parent booking missing", func(t *testing.T) {
		uc, bookings, records, _ := newGuestUseCase(t)
		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(entities.Booking{}, nil)
		bookings.EXPECT().GetByGroupAndEmail(gomock.Any(), "grp-1", "ana@example.com").Return(entities.Booking{}, nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(entities.Booking{}, nil)

		_, err := uc.OnboardGuest(context.Background(), anaInput())
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("parent booking in another group", func(t *testing.T) {
		uc, bookings, records, _ := newGuestUseCase(t)
		parent := mainBooking()
		parent.GroupID = "grp-2"
		records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(entities.Booking{}, nil)
		bookings.EXPECT().GetByGroupAndEmail(gomock.Any(), "grp-1", "ana@example.com").Return(entities.Booking{}, nil)
		bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(parent, nil)

		_, err := uc.OnboardGuest(context.Background(), anaInput())
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invitation taken by a different booking", func(t *testing.T) {
		uc, bookings, records, _ := newGuestUseCase(t)
		existing := anaBooking()
		fresh := groupRecord()
		fresh.GuestInvitations[0].Status = entities.InvitationStatusAccepted
		fresh.GuestInvitations[0].GuestBookingID = "someone-else"

		gomock.InOrder(
			records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(groupRecord(), nil),
			bookings.EXPECT().GetByDocumentID(gomock.Any(), anaDocID).Return(existing, nil),
			records.EXPECT().AcceptInvitation(gomock.Any(), "rec-1", 0, "ana@example.com", existing.DocumentID, fixedNow).Return(entities.PaymentRecord{}, entities.ErrConflict),
			records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(fresh, nil),
		)

		_, err := uc.OnboardGuest(context.Background(), anaInput())
		if !errors.Is(err, entities.ErrInvitationInvalid) {
			t.Fatalf("expected ErrInvitationInvalid, got %v", err)
		}
	})
}

func TestOnboardingOutcome(t *testing.T) {
	cases := []struct {
		name string
		res  GuestOnboardingResult
		err  error
		want string
	}{
		{name: "created", want: metrics.OutcomeCreated},
		{name: "resumed", res: GuestOnboardingResult{Resumed: true}, want: metrics.OutcomeResumed},
		{name: "rejected", err: entities.ErrInvitationInvalid, want: metrics.OutcomeRejected},
		{name: "storage failure", err: entities.ErrStorageUnavailable, want: metrics.OutcomeFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := onboardingOutcome(tc.res, tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
