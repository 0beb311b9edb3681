package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/metrics"
	"tour_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrEvidenceStorageNotConfigured = errors.New("evidence storage not configured")

type EvidenceSubmission struct {
	BookingDocumentID string
	InstallmentTerm   string
	Amount            decimal.Decimal
	Currency          string
	FileName          string
	ContentType       string
	Size              int64
	Screenshot        io.Reader
}

// EvidenceFilter selects evidence for the review screen. With neither field
// set the pending queue is returned.
type EvidenceFilter struct {
	Status            entities.EvidenceStatus
	BookingDocumentID string
}

// IPaymentEvidenceUseCase reconciles bank-transfer screenshots against the
// booking ledger.
//
// Evidence moves pending -> approved or pending -> rejected, once. Approving
// or rejecting a decided record returns it unchanged so operator retries are
// safe.
type IPaymentEvidenceUseCase interface {
	Submit(ctx context.Context, in EvidenceSubmission) (entities.PaymentEvidence, error)
	Approve(ctx context.Context, id string) (entities.PaymentEvidence, error)
	Reject(ctx context.Context, id, reason string) (entities.PaymentEvidence, error)
	GetByID(ctx context.Context, id string) (entities.PaymentEvidence, error)
	List(ctx context.Context, filter EvidenceFilter) ([]entities.PaymentEvidence, error)
}

type PaymentEvidenceUseCase struct {
	repo     interfaces.IPaymentEvidenceRepository
	bookings interfaces.IBookingRepository
	storage  interfaces.IEvidenceStorage
	metrics  *metrics.BookingMetrics
	logger   *zap.Logger
	now      func() time.Time
}

var _ IPaymentEvidenceUseCase = (*PaymentEvidenceUseCase)(nil)

func NewPaymentEvidenceUseCase(
	repo interfaces.IPaymentEvidenceRepository,
	bookings interfaces.IBookingRepository,
	storage interfaces.IEvidenceStorage,
	m *metrics.BookingMetrics,
) *PaymentEvidenceUseCase {
	return &PaymentEvidenceUseCase{
		repo:     repo,
		bookings: bookings,
		storage:  storage,
		metrics:  m,
		logger:   zap.L().Named("payment_evidence"),
		now:      utcNow,
	}
}

func (u *PaymentEvidenceUseCase) Submit(ctx context.Context, in EvidenceSubmission) (entities.PaymentEvidence, error) {
	in.BookingDocumentID = strings.TrimSpace(in.BookingDocumentID)
	if in.BookingDocumentID == "" {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: booking document id is required", entities.ErrInvalidInput)
	}
	term, ok := entities.ParseInstallmentTerm(in.InstallmentTerm)
	if !ok {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: unknown installment term %q", entities.ErrInvalidInput, in.InstallmentTerm)
	}
	if !in.Amount.IsPositive() {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: amount must be positive", entities.ErrInvalidInput)
	}
	if in.Screenshot == nil || in.Size <= 0 {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: screenshot is required", entities.ErrInvalidInput)
	}
	if u.storage == nil {
		return entities.PaymentEvidence{}, ErrEvidenceStorageNotConfigured
	}

	b, err := u.bookings.GetByDocumentID(ctx, in.BookingDocumentID)
	if err != nil {
		return entities.PaymentEvidence{}, err
	}
	if b.DocumentID == "" {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: booking %s", entities.ErrNotFound, in.BookingDocumentID)
	}
	i, ok := b.FindInstallment(term)
	if !ok {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: booking %s has no installment %s", entities.ErrInvalidInput, b.DocumentID, term)
	}
	if b.Installments[i].IsPaid() {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: %s on booking %s", entities.ErrInstallmentAlreadyPaid, term, b.DocumentID)
	}

	id := uuid.NewString()
	key := fmt.Sprintf("evidence/%s/%s%s", b.DocumentID, id, strings.ToLower(path.Ext(in.FileName)))
	ref, err := u.storage.Upload(ctx, key, in.ContentType, in.Screenshot, in.Size)
	if err != nil {
		return entities.PaymentEvidence{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = b.Currency
	}
	e := entities.PaymentEvidence{
		ID:                id,
		BookingDocumentID: b.DocumentID,
		InstallmentTerm:   term,
		Amount:            in.Amount,
		Currency:          currency,
		ScreenshotRef:     ref,
		Status:            entities.EvidenceStatusPending,
		CreatedAt:         u.now(),
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.PaymentEvidence{}, err
	}

	withCorrelation(ctx, u.logger).Info("evidence submitted",
		zap.String("evidence_id", created.ID),
		zap.String("booking_document_id", created.BookingDocumentID),
		zap.String("term", string(created.InstallmentTerm)),
		zap.String("amount", created.Amount.String()),
	)
	return created, nil
}

// Approve marks the targeted installment paid and then the evidence approved.
// The ledger is written first; a retry after a failed evidence write finds the
// installment paid by this same evidence and only finishes the evidence.
func (u *PaymentEvidenceUseCase) Approve(ctx context.Context, id string) (entities.PaymentEvidence, error) {
	ev, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentEvidence{}, err
	}
	log := withCorrelation(ctx, u.logger).With(
		zap.String("evidence_id", ev.ID),
		zap.String("booking_document_id", ev.BookingDocumentID),
	)
	if ev.Status != entities.EvidenceStatusPending {
		log.Info("approve ignored, evidence already decided", zap.String("status", string(ev.Status)))
		u.metrics.EvidenceDecision(metrics.DecisionNoop)
		return ev, nil
	}

	now := u.now()
	b, err := mutateLedger(ctx, u.bookings, u.metrics, ev.BookingDocumentID, now, func(b *entities.Booking) (bool, error) {
		i, ok := b.FindInstallment(ev.InstallmentTerm)
		if !ok {
			return false, fmt.Errorf("%w: booking %s has no installment %s", entities.ErrInvalidInput, b.DocumentID, ev.InstallmentTerm)
		}
		inst := &b.Installments[i]
		if inst.IsPaid() {
			if inst.PaidByEvidenceID == ev.ID {
				return false, nil
			}
			return false, fmt.Errorf("%w: %s on booking %s", entities.ErrInstallmentAlreadyPaid, inst.Term, b.DocumentID)
		}
		paid := now
		inst.DatePaid = &paid
		inst.PaidByEvidenceID = ev.ID
		return true, nil
	})
	if err != nil {
		log.Warn("approve failed on booking ledger", zap.Error(err))
		return entities.PaymentEvidence{}, err
	}
	log.Info("installment marked paid",
		zap.String("term", string(ev.InstallmentTerm)),
		zap.String("booking_status", string(b.BookingStatus)),
		zap.Int("payment_progress", b.PaymentProgress),
	)

	return u.decide(ctx, log, ev, entities.EvidenceStatusApproved, "", now)
}

// Reject only touches the evidence; the installment stays open for a new
// submission.
func (u *PaymentEvidenceUseCase) Reject(ctx context.Context, id, reason string) (entities.PaymentEvidence, error) {
	ev, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentEvidence{}, err
	}
	log := withCorrelation(ctx, u.logger).With(zap.String("evidence_id", ev.ID))
	if ev.Status != entities.EvidenceStatusPending {
		log.Info("reject ignored, evidence already decided", zap.String("status", string(ev.Status)))
		u.metrics.EvidenceDecision(metrics.DecisionNoop)
		return ev, nil
	}
	return u.decide(ctx, log, ev, entities.EvidenceStatusRejected, strings.TrimSpace(reason), u.now())
}

func (u *PaymentEvidenceUseCase) decide(
	ctx context.Context,
	log *zap.Logger,
	ev entities.PaymentEvidence,
	to entities.EvidenceStatus,
	reason string,
	at time.Time,
) (entities.PaymentEvidence, error) {
	if !ev.Status.CanTransitionTo(to) {
		return ev, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, ev.ID, entities.EvidenceStatusPending, to, reason, at)
	if errors.Is(err, entities.ErrConflict) {
		current, gerr := u.GetByID(ctx, ev.ID)
		if gerr != nil {
			return entities.PaymentEvidence{}, gerr
		}
		log.Info("evidence decided concurrently", zap.String("status", string(current.Status)))
		u.metrics.EvidenceDecision(metrics.DecisionNoop)
		return current, nil
	}
	if err != nil {
		log.Error("evidence status update failed", zap.String("to", string(to)), zap.Error(err))
		return entities.PaymentEvidence{}, err
	}

	u.metrics.EvidenceDecision(string(to))
	log.Info("evidence decided", zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *PaymentEvidenceUseCase) GetByID(ctx context.Context, id string) (entities.PaymentEvidence, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: evidence id is required", entities.ErrInvalidInput)
	}

	ev, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentEvidence{}, err
	}
	if ev.ID == "" {
		return entities.PaymentEvidence{}, fmt.Errorf("%w: evidence %s", entities.ErrNotFound, id)
	}
	return ev, nil
}

// List returns matching evidence oldest first.
func (u *PaymentEvidenceUseCase) List(ctx context.Context, filter EvidenceFilter) ([]entities.PaymentEvidence, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown evidence status %q", entities.ErrInvalidInput, filter.Status)
	}

	var (
		list []entities.PaymentEvidence
		err  error
	)
	if docID := strings.TrimSpace(filter.BookingDocumentID); docID != "" {
		list, err = u.repo.ListByBookingDocumentID(ctx, docID)
		if err == nil && filter.Status != "" {
			list = filterByStatus(list, filter.Status)
		}
	} else {
		status := filter.Status
		if status == "" {
			status = entities.EvidenceStatusPending
		}
		list, err = u.repo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func filterByStatus(list []entities.PaymentEvidence, status entities.EvidenceStatus) []entities.PaymentEvidence {
	out := list[:0]
	for _, e := range list {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}
