package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/domain/schedule"
	"tour_billing/internal/infrastructure/metrics"
	"tour_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	providerStatusApproved = "approved"
	originCheckout         = "checkout"
	originGuest            = "guest"
)

var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")

// CheckoutInput is what the checkout collaborator hands over once a payment
// has completed.
type CheckoutInput struct {
	Provider          entities.PaymentProvider
	ProviderPaymentID string
	PayerEmail        string
	FirstName         string
	LastName          string
	TourPackageID     string
	TourDate          time.Time
	BookingType       entities.BookingType
	PaymentTermID     string
	AmountPaid        decimal.Decimal
	Currency          string
	GuestEmails       []string
}

// IBookingUseCase turns completed checkouts into bookings and exposes the
// booking ledger to operators.
type IBookingUseCase interface {
	CreateFromCheckout(ctx context.Context, in CheckoutInput) (entities.Booking, error)
	GetByDocumentID(ctx context.Context, documentID string) (entities.Booking, error)
	ListByGroupID(ctx context.Context, groupID string) ([]entities.Booking, error)
	OverrideInstallment(ctx context.Context, documentID, term string, datePaid *time.Time) (entities.Booking, error)
}

type BookingUseCase struct {
	bookings interfaces.IBookingRepository
	records  interfaces.IPaymentRecordRepository
	terms    interfaces.IPaymentTermRepository
	packages interfaces.ITourPackageRepository
	gateway  interfaces.IPaymentGateway
	metrics  *metrics.BookingMetrics
	logger   *zap.Logger
	now      func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookings interfaces.IBookingRepository,
	records interfaces.IPaymentRecordRepository,
	terms interfaces.IPaymentTermRepository,
	packages interfaces.ITourPackageRepository,
	gateway interfaces.IPaymentGateway,
	m *metrics.BookingMetrics,
) *BookingUseCase {
	return &BookingUseCase{
		bookings: bookings,
		records:  records,
		terms:    terms,
		packages: packages,
		gateway:  gateway,
		metrics:  m,
		logger:   zap.L().Named("booking"),
		now:      utcNow,
	}
}

func (u *BookingUseCase) CreateFromCheckout(ctx context.Context, in CheckoutInput) (entities.Booking, error) {
	log := withCorrelation(ctx, u.logger)
	in, err := normalizeCheckout(in)
	if err != nil {
		return entities.Booking{}, err
	}

	recordID := PaymentRecordID(in.Provider, in.ProviderPaymentID)
	log = log.With(zap.String("payment_record_id", recordID), zap.String("provider", string(in.Provider)))
	log.Info("checkout hand-off start", zap.String("booking_type", string(in.BookingType)))

	rec, err := u.records.GetByID(ctx, recordID)
	if err != nil {
		return entities.Booking{}, err
	}
	if rec.ID != "" {
		existing, err := u.processedBooking(ctx, log, rec)
		if err != nil {
			return entities.Booking{}, err
		}
		if existing.DocumentID != "" {
			return existing, nil
		}
	}

	if in.Provider == entities.PaymentProviderCard {
		if err := u.verifyCardPayment(ctx, in); err != nil {
			log.Warn("card payment verification failed", zap.Error(err))
			return entities.Booking{}, err
		}
	}

	pkg, err := u.packages.GetByID(ctx, in.TourPackageID)
	if err != nil {
		return entities.Booking{}, err
	}
	if pkg.ID == "" {
		return entities.Booking{}, fmt.Errorf("%w: tour package %s", entities.ErrNotFound, in.TourPackageID)
	}
	if !pkg.HasTourDate(in.TourDate) {
		return entities.Booking{}, fmt.Errorf("%w: tour date %s is not offered by package %s",
			entities.ErrInvalidInput, in.TourDate.Format(time.DateOnly), pkg.ID)
	}

	term, err := u.terms.GetByID(ctx, in.PaymentTermID)
	if err != nil {
		return entities.Booking{}, err
	}
	if term.ID == "" {
		return entities.Booking{}, fmt.Errorf("%w: payment term %s", entities.ErrNotFound, in.PaymentTermID)
	}
	if !term.IsActive {
		return entities.Booking{}, fmt.Errorf("%w: payment term %s is inactive", entities.ErrInvalidInput, term.ID)
	}

	now := u.now()
	installments, err := schedule.Compute(term, in.TourDate, pkg.Price(), now)
	if err != nil {
		return entities.Booking{}, err
	}

	groupID := groupIDFor(recordID)
	if rec.ID == "" {
		rec, err = u.createRecord(ctx, recordID, groupID, in, now)
		if err != nil {
			return entities.Booking{}, err
		}
	}

	b := entities.Booking{
		DocumentID:           mainBookingDocumentID(recordID),
		GroupID:              groupID,
		BookingType:          in.BookingType,
		IsMainBooker:         true,
		Email:                in.PayerEmail,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		TourPackageID:        pkg.ID,
		TourName:             pkg.Name,
		TourDate:             entities.DateOnly(in.TourDate),
		ReturnDate:           pkg.ReturnDate(in.TourDate),
		OriginalTourCost:     pkg.OriginalCost,
		DiscountedTourCost:   pkg.DiscountedCost,
		Currency:             firstNonEmpty(in.Currency, pkg.Currency),
		ReservationFee:       in.AmountPaid,
		ReservationFeePaidAt: &now,
		PaymentPlan:          term.Name,
		PaymentTermID:        term.ID,
		Installments:         installments,
		SourcePaymentID:      rec.ID,
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	b.RecomputeLedger(now)

	if err := assignCodes(ctx, u.bookings, &b); err != nil {
		return entities.Booking{}, err
	}

	created, err := u.bookings.Create(ctx, b)
	if errors.Is(err, entities.ErrDuplicateBooking) {
		created, err = u.resumeMainBooking(ctx, recordID, err)
	}
	if err != nil {
		log.Warn("booking create failed", zap.Error(err))
		return entities.Booking{}, err
	}

	if _, err := u.records.SetBookingDocumentID(ctx, recordID, created.DocumentID, now); err != nil {
		log.Error("linking booking to payment record failed", zap.String("booking_document_id", created.DocumentID), zap.Error(err))
		return entities.Booking{}, err
	}

	u.metrics.BookingCreated(string(created.BookingType), originCheckout)
	log.Info("checkout booking created",
		zap.String("booking_document_id", created.DocumentID),
		zap.String("booking_id", created.BookingID),
		zap.Int("installments", len(created.Installments)),
	)
	return created, nil
}

func (u *BookingUseCase) verifyCardPayment(ctx context.Context, in CheckoutInput) error {
	if u.gateway == nil {
		return ErrPaymentGatewayNotConfigured
	}
	p, err := u.gateway.GetPayment(ctx, in.ProviderPaymentID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(p.Status, providerStatusApproved) {
		return fmt.Errorf("%w: card payment %s has status %q", entities.ErrInvalidInput, in.ProviderPaymentID, p.Status)
	}
	if p.TransactionAmount > 0 && !decimal.NewFromFloat(p.TransactionAmount).Equal(in.AmountPaid) {
		return fmt.Errorf("%w: amount paid %s does not match provider amount %v",
			entities.ErrInvalidInput, in.AmountPaid, p.TransactionAmount)
	}
	return nil
}

func (u *BookingUseCase) createRecord(ctx context.Context, recordID, groupID string, in CheckoutInput, now time.Time) (entities.PaymentRecord, error) {
	invitations := make([]entities.GuestInvitation, 0, len(in.GuestEmails))
	for _, email := range in.GuestEmails {
		invitations = append(invitations, entities.GuestInvitation{Email: email, Status: entities.InvitationStatusPending})
	}

	rec := entities.PaymentRecord{
		ID:                recordID,
		Provider:          in.Provider,
		ProviderPaymentID: in.ProviderPaymentID,
		PayerEmail:        in.PayerEmail,
		TourPackageID:     in.TourPackageID,
		TourDate:          entities.DateOnly(in.TourDate),
		BookingType:       in.BookingType,
		AmountPaid:        in.AmountPaid,
		Currency:          in.Currency,
		GroupID:           groupID,
		GuestInvitations:  invitations,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.records.Create(ctx, rec)
	if errors.Is(err, entities.ErrConflict) {
		// A concurrent hand-off of the same payment got there first.
		return u.records.GetByID(ctx, recordID)
	}
	return created, err
}

// processedBooking returns the main booking an earlier hand-off of rec already
// stored, linking it to the record when a previous attempt stopped short of that.
// The document id is deterministic, so the read is consistent.
func (u *BookingUseCase) processedBooking(ctx context.Context, log *zap.Logger, rec entities.PaymentRecord) (entities.Booking, error) {
	docID := rec.BookingDocumentID
	if docID == "" {
		docID = mainBookingDocumentID(rec.ID)
	}
	existing, err := u.bookings.GetByDocumentID(ctx, docID)
	if err != nil || existing.DocumentID == "" {
		return entities.Booking{}, err
	}
	if rec.BookingDocumentID == "" {
		if existing.SourcePaymentID != rec.ID || !existing.IsMainBooker {
			return entities.Booking{}, nil
		}
		if _, err := u.records.SetBookingDocumentID(ctx, rec.ID, existing.DocumentID, u.now()); err != nil {
			log.Error("linking booking to payment record failed", zap.String("booking_document_id", existing.DocumentID), zap.Error(err))
			return entities.Booking{}, err
		}
		log.Info("linked stored booking to payment record", zap.String("booking_document_id", existing.DocumentID))
		return existing, nil
	}
	log.Info("checkout already processed", zap.String("booking_document_id", existing.DocumentID))
	return existing, nil
}

// resumeMainBooking accepts a uniqueness conflict only when the stored booking
// is the main booking this payment record already produced.
func (u *BookingUseCase) resumeMainBooking(ctx context.Context, recordID string, conflict error) (entities.Booking, error) {
	existing, err := u.bookings.GetByDocumentID(ctx, mainBookingDocumentID(recordID))
	if err != nil {
		return entities.Booking{}, err
	}
	if existing.DocumentID == "" || existing.SourcePaymentID != recordID || !existing.IsMainBooker {
		return entities.Booking{}, conflict
	}
	return existing, nil
}

func (u *BookingUseCase) GetByDocumentID(ctx context.Context, documentID string) (entities.Booking, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Booking{}, fmt.Errorf("%w: booking document id is required", entities.ErrInvalidInput)
	}

	b, err := u.bookings.GetByDocumentID(ctx, documentID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.DocumentID == "" {
		return entities.Booking{}, fmt.Errorf("%w: booking %s", entities.ErrNotFound, documentID)
	}
	return b, nil
}

// ListByGroupID returns the main booker first, then guests in creation order.
func (u *BookingUseCase) ListByGroupID(ctx context.Context, groupID string) ([]entities.Booking, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", entities.ErrInvalidInput)
	}

	list, err := u.bookings.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].IsMainBooker != list[j].IsMainBooker {
			return list[i].IsMainBooker
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// OverrideInstallment lets an operator mark one installment paid on datePaid,
// or unpaid when datePaid is nil.
func (u *BookingUseCase) OverrideInstallment(ctx context.Context, documentID, rawTerm string, datePaid *time.Time) (entities.Booking, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Booking{}, fmt.Errorf("%w: booking document id is required", entities.ErrInvalidInput)
	}
	term, ok := entities.ParseInstallmentTerm(rawTerm)
	if !ok {
		return entities.Booking{}, fmt.Errorf("%w: unknown installment term %q", entities.ErrInvalidInput, rawTerm)
	}

	now := u.now()
	updated, err := mutateLedger(ctx, u.bookings, u.metrics, documentID, now, func(b *entities.Booking) (bool, error) {
		i, ok := b.FindInstallment(term)
		if !ok {
			return false, fmt.Errorf("%w: booking %s has no installment %s", entities.ErrInvalidInput, documentID, term)
		}
		inst := &b.Installments[i]
		if datePaid == nil {
			if !inst.IsPaid() {
				return false, nil
			}
			inst.DatePaid = nil
			inst.PaidByEvidenceID = ""
			return true, nil
		}
		paid := entities.DateOnly(*datePaid)
		inst.DatePaid = &paid
		inst.PaidByEvidenceID = ""
		return true, nil
	})
	if err != nil {
		return entities.Booking{}, err
	}

	withCorrelation(ctx, u.logger).Info("installment overridden",
		zap.String("booking_document_id", documentID),
		zap.String("term", string(term)),
		zap.Bool("paid", datePaid != nil),
		zap.String("booking_status", string(updated.BookingStatus)),
	)
	return updated, nil
}

func normalizeCheckout(in CheckoutInput) (CheckoutInput, error) {
	in.ProviderPaymentID = strings.TrimSpace(in.ProviderPaymentID)
	in.PayerEmail = entities.NormalizeEmail(in.PayerEmail)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.TourPackageID = strings.TrimSpace(in.TourPackageID)
	in.PaymentTermID = strings.TrimSpace(in.PaymentTermID)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))

	switch {
	case in.Provider != entities.PaymentProviderCard && in.Provider != entities.PaymentProviderBankTransfer:
		return in, fmt.Errorf("%w: unknown provider %q", entities.ErrInvalidInput, in.Provider)
	case in.ProviderPaymentID == "":
		return in, fmt.Errorf("%w: provider payment id is required", entities.ErrInvalidInput)
	case in.PayerEmail == "":
		return in, fmt.Errorf("%w: payer email is required", entities.ErrInvalidInput)
	case in.TourPackageID == "":
		return in, fmt.Errorf("%w: tour package id is required", entities.ErrInvalidInput)
	case in.PaymentTermID == "":
		return in, fmt.Errorf("%w: payment term id is required", entities.ErrInvalidInput)
	case in.TourDate.IsZero():
		return in, fmt.Errorf("%w: tour date is required", entities.ErrInvalidInput)
	case !in.BookingType.Valid():
		return in, fmt.Errorf("%w: unknown booking type %q", entities.ErrInvalidInput, in.BookingType)
	case !in.AmountPaid.IsPositive():
		return in, fmt.Errorf("%w: amount paid must be positive", entities.ErrInvalidInput)
	}

	guests, err := normalizeGuestEmails(in.GuestEmails, in.PayerEmail)
	if err != nil {
		return in, err
	}
	in.GuestEmails = guests

	switch in.BookingType {
	case entities.BookingTypeSingle:
		if len(guests) != 0 {
			return in, fmt.Errorf("%w: single bookings take no guests", entities.ErrInvalidInput)
		}
	case entities.BookingTypeDuo:
		if len(guests) != 1 {
			return in, fmt.Errorf("%w: duo bookings take exactly one guest", entities.ErrInvalidInput)
		}
	case entities.BookingTypeGroup:
		if len(guests) < 2 {
			return in, fmt.Errorf("%w: group bookings take at least two guests", entities.ErrInvalidInput)
		}
	}
	return in, nil
}

func normalizeGuestEmails(raw []string, payerEmail string) ([]string, error) {
	seen := map[string]bool{payerEmail: true}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		email := entities.NormalizeEmail(e)
		if email == "" {
			continue
		}
		if seen[email] {
			return nil, fmt.Errorf("%w: guest email %s is listed twice or matches the payer", entities.ErrInvalidInput, email)
		}
		seen[email] = true
		out = append(out, email)
	}
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
