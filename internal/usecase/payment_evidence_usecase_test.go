package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/metrics"
	mock_interfaces "tour_billing/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type evidenceMocks struct {
	repo     *mock_interfaces.MockIPaymentEvidenceRepository
	bookings *mock_interfaces.MockIBookingRepository
	storage  *mock_interfaces.MockIEvidenceStorage
	reg      *prometheus.Registry
}

func newEvidenceUseCase(t *testing.T) (*PaymentEvidenceUseCase, evidenceMocks) {
	ctrl := gomock.NewController(t)
	m := evidenceMocks{
		repo:     mock_interfaces.NewMockIPaymentEvidenceRepository(ctrl),
		bookings: mock_interfaces.NewMockIBookingRepository(ctrl),
		storage:  mock_interfaces.NewMockIEvidenceStorage(ctrl),
		reg:      prometheus.NewRegistry(),
	}
	uc := NewPaymentEvidenceUseCase(m.repo, m.bookings, m.storage, metrics.NewBookingMetrics(m.reg))
	uc.now = fixedClock
	return uc, m
}

func screenshotSubmission() EvidenceSubmission {
	return EvidenceSubmission{
		BookingDocumentID: "doc-main",
		InstallmentTerm:   "p2",
		Amount:            decimal.NewFromInt(250),
		FileName:          "Receipt.PNG",
		ContentType:       "image/png",
		Size:              4,
		Screenshot:        strings.NewReader("\x89PNG"),
	}
}

func assertDecisions(t *testing.T, reg *prometheus.Registry, decision string) {
	t.Helper()
	expected := `
# HELP tour_billing_evidence_decisions_total Payment evidence reviews by decision.
# TYPE tour_billing_evidence_decisions_total counter
tour_billing_evidence_decisions_total{decision="` + decision + `"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "tour_billing_evidence_decisions_total"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestPaymentEvidenceUseCase_Submit(t *testing.T) {
	t.Run("stores screenshot and creates pending evidence", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(mainBooking(), nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
				if !strings.HasPrefix(key, "evidence/doc-main/") || !strings.HasSuffix(key, ".png") {
					t.Fatalf("unexpected object key %q", key)
				}
				data, _ := io.ReadAll(body)
				if string(data) != "\x89PNG" {
					t.Fatalf("unexpected body %q", data)
				}
				return "s3://evidence-bucket/" + key, nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PaymentEvidence) (entities.PaymentEvidence, error) { return e, nil })

		got, err := uc.Submit(context.Background(), screenshotSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Status != entities.EvidenceStatusPending || got.InstallmentTerm != "P2" {
			t.Fatalf("unexpected evidence: %+v", got)
		}
		if got.Currency != "USD" || !got.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected defaults: %+v", got)
		}
		if !strings.HasPrefix(got.ScreenshotRef, "s3://evidence-bucket/evidence/doc-main/"+got.ID) {
			t.Fatalf("unexpected screenshot ref %q", got.ScreenshotRef)
		}
	})

	t.Run("installment already paid", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(mainBooking(), nil)
		in := screenshotSubmission()
		in.InstallmentTerm = "P1"

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, entities.ErrInstallmentAlreadyPaid) {
			t.Fatalf("expected ErrInstallmentAlreadyPaid, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(entities.Booking{}, nil)

		_, err := uc.Submit(context.Background(), screenshotSubmission())
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing screenshot", func(t *testing.T) {
		uc, _ := newEvidenceUseCase(t)
		in := screenshotSubmission()
		in.Screenshot = nil

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		_, m := newEvidenceUseCase(t)
		uc := NewPaymentEvidenceUseCase(m.repo, m.bookings, nil, testMetrics())

		_, err := uc.Submit(context.Background(), screenshotSubmission())
		if !errors.Is(err, ErrEvidenceStorageNotConfigured) {
			t.Fatalf("expected ErrEvidenceStorageNotConfigured, got %v", err)
		}
	})
}

func TestPaymentEvidenceUseCase_Approve(t *testing.T) {
	t.Run("marks installment paid then approves", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		approved := pendingEvidence()
		approved.Status = entities.EvidenceStatusApproved

		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(pendingEvidence(), nil),
			m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(mainBooking(), nil),
			m.bookings.EXPECT().UpdateLedger(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
				func(_ context.Context, b entities.Booking, _ int64) (entities.Booking, error) {
					p2 := b.Installments[1]
					if !p2.IsPaid() || p2.PaidByEvidenceID != "ev-1" || !p2.DatePaid.Equal(fixedNow) {
						t.Fatalf("P2 not marked paid by ev-1: %+v", p2)
					}
					if b.BookingStatus != entities.BookingStatusPartiallyPaid || b.PaymentProgress != 50 {
						t.Fatalf("unexpected ledger %s %d", b.BookingStatus, b.PaymentProgress)
					}
					return b, nil
				}),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "ev-1", entities.EvidenceStatusPending, entities.EvidenceStatusApproved, "", fixedNow).Return(approved, nil),
		)

		got, err := uc.Approve(context.Background(), "ev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EvidenceStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
		assertDecisions(t, m.reg, metrics.DecisionApproved)
	})

	t.Run("already decided is a no-op", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		decided := pendingEvidence()
		decided.Status = entities.EvidenceStatusRejected
		m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(decided, nil)

		got, err := uc.Approve(context.Background(), "ev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EvidenceStatusRejected {
			t.Fatalf("expected unchanged evidence, got %s", got.Status)
		}
		assertDecisions(t, m.reg, metrics.DecisionNoop)
	})

	t.Run("resumes after the ledger write", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		b := mainBooking()
		paid := fixedNow
		b.Installments[1].DatePaid = &paid
		b.Installments[1].PaidByEvidenceID = "ev-1"
		approved := pendingEvidence()
		approved.Status = entities.EvidenceStatusApproved

		m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(pendingEvidence(), nil)
		m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(b, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "ev-1", entities.EvidenceStatusPending, entities.EvidenceStatusApproved, "", fixedNow).Return(approved, nil)

		got, err := uc.Approve(context.Background(), "ev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EvidenceStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
	})

	t.Run("installment paid by other evidence", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		b := mainBooking()
		paid := fixedNow
		b.Installments[1].DatePaid = &paid
		b.Installments[1].PaidByEvidenceID = "ev-9"

		m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(pendingEvidence(), nil)
		m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(b, nil)

		_, err := uc.Approve(context.Background(), "ev-1")
		if !errors.Is(err, entities.ErrInstallmentAlreadyPaid) {
			t.Fatalf("expected ErrInstallmentAlreadyPaid, got %v", err)
		}
	})

	t.Run("evidence decided concurrently", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		current := pendingEvidence()
		current.Status = entities.EvidenceStatusApproved

		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(pendingEvidence(), nil),
			m.bookings.EXPECT().GetByDocumentID(gomock.Any(), "doc-main").Return(mainBooking(), nil),
			m.bookings.EXPECT().UpdateLedger(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
				func(_ context.Context, b entities.Booking, _ int64) (entities.Booking, error) { return b, nil }),
			m.repo.EXPECT().UpdateStatus(gomock.Any(), "ev-1", entities.EvidenceStatusPending, entities.EvidenceStatusApproved, "", fixedNow).
				Return(entities.PaymentEvidence{}, entities.ErrConflict),
			m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(current, nil),
		)

		got, err := uc.Approve(context.Background(), "ev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EvidenceStatusApproved {
			t.Fatalf("expected stored status, got %s", got.Status)
		}
		assertDecisions(t, m.reg, metrics.DecisionNoop)
	})

	t.Run("evidence not found", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ev-x").Return(entities.PaymentEvidence{}, nil)

		_, err := uc.Approve(context.Background(), "ev-x")
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPaymentEvidenceUseCase_Reject(t *testing.T) {
	uc, m := newEvidenceUseCase(t)
	rejected := pendingEvidence()
	rejected.Status = entities.EvidenceStatusRejected
	rejected.RejectionReason = "blurry"

	m.repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(pendingEvidence(), nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), "ev-1", entities.EvidenceStatusPending, entities.EvidenceStatusRejected, "blurry", fixedNow).Return(rejected, nil)

	got, err := uc.Reject(context.Background(), "ev-1", "  blurry ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.EvidenceStatusRejected || got.RejectionReason != "blurry" {
		t.Fatalf("unexpected evidence: %+v", got)
	}
	assertDecisions(t, m.reg, metrics.DecisionRejected)
}

func TestPaymentEvidenceUseCase_List(t *testing.T) {
	t.Run("defaults to the pending queue oldest first", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		m.repo.EXPECT().ListByStatus(gomock.Any(), entities.EvidenceStatusPending).Return([]entities.PaymentEvidence{
			{ID: "b", CreatedAt: day(2026, time.March, 5)},
			{ID: "a", CreatedAt: day(2026, time.March, 1)},
		}, nil)

		got, err := uc.List(context.Background(), EvidenceFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("by booking filtered by status", func(t *testing.T) {
		uc, m := newEvidenceUseCase(t)
		m.repo.EXPECT().ListByBookingDocumentID(gomock.Any(), "doc-main").Return([]entities.PaymentEvidence{
			{ID: "a", Status: entities.EvidenceStatusApproved},
			{ID: "b", Status: entities.EvidenceStatusPending},
		}, nil)

		got, err := uc.List(context.Background(), EvidenceFilter{BookingDocumentID: "doc-main", Status: entities.EvidenceStatusApproved})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newEvidenceUseCase(t)
		_, err := uc.List(context.Background(), EvidenceFilter{Status: "lost"})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
