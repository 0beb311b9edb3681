package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/metrics"
	"tour_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type GuestOnboardingInput struct {
	PaymentDocID    string
	ParentBookingID string
	GuestEmail      string
	FirstName       string
	LastName        string
}

type GuestOnboardingResult struct {
	BookingDocumentID string
	BookingID         string
	// Resumed is set when an earlier attempt had already created the booking.
	Resumed bool
}

// InheritedTerms is everything a guest booking copies from the parent booking.
// Guests never get a freshly computed schedule: every member of a group shares
// the parent's due dates and amounts.
type InheritedTerms struct {
	GroupID            string
	BookingType        entities.BookingType
	PaymentPlan        string
	PaymentTermID      string
	TourPackageID      string
	TourName           string
	TourDate           time.Time
	ReturnDate         time.Time
	OriginalTourCost   decimal.Decimal
	DiscountedTourCost *decimal.Decimal
	Currency           string
	ReservationFee     decimal.Decimal
	Installments       []entities.Installment
}

func inheritTerms(parent entities.Booking) InheritedTerms {
	installments := make([]entities.Installment, len(parent.Installments))
	for i, inst := range parent.Installments {
		installments[i] = entities.Installment{
			Term:    inst.Term,
			Amount:  inst.Amount,
			DueDate: inst.DueDate,
		}
	}

	var discounted *decimal.Decimal
	if parent.DiscountedTourCost != nil {
		d := *parent.DiscountedTourCost
		discounted = &d
	}

	return InheritedTerms{
		GroupID:            parent.GroupID,
		BookingType:        parent.BookingType,
		PaymentPlan:        parent.PaymentPlan,
		PaymentTermID:      parent.PaymentTermID,
		TourPackageID:      parent.TourPackageID,
		TourName:           parent.TourName,
		TourDate:           parent.TourDate,
		ReturnDate:         parent.ReturnDate,
		OriginalTourCost:   parent.OriginalTourCost,
		DiscountedTourCost: discounted,
		Currency:           parent.Currency,
		ReservationFee:     parent.ReservationFee,
		Installments:       installments,
	}
}

func (t InheritedTerms) applyTo(b *entities.Booking) {
	b.GroupID = t.GroupID
	b.BookingType = t.BookingType
	b.PaymentPlan = t.PaymentPlan
	b.PaymentTermID = t.PaymentTermID
	b.TourPackageID = t.TourPackageID
	b.TourName = t.TourName
	b.TourDate = t.TourDate
	b.ReturnDate = t.ReturnDate
	b.OriginalTourCost = t.OriginalTourCost
	b.DiscountedTourCost = t.DiscountedTourCost
	b.Currency = t.Currency
	b.ReservationFee = t.ReservationFee
	b.Installments = t.Installments
}

// IGuestBookingUseCase onboards an invited guest into an existing duo or
// group booking.
//
// The flow spans three documents without a transaction. Every step detects
// its own completion, so callers retry the whole call until it succeeds.
type IGuestBookingUseCase interface {
	OnboardGuest(ctx context.Context, in GuestOnboardingInput) (GuestOnboardingResult, error)
}

type GuestBookingUseCase struct {
	bookings interfaces.IBookingRepository
	records  interfaces.IPaymentRecordRepository
	metrics  *metrics.BookingMetrics
	logger   *zap.Logger
	now      func() time.Time
}

var _ IGuestBookingUseCase = (*GuestBookingUseCase)(nil)

func NewGuestBookingUseCase(bookings interfaces.IBookingRepository, records interfaces.IPaymentRecordRepository, m *metrics.BookingMetrics) *GuestBookingUseCase {
	return &GuestBookingUseCase{
		bookings: bookings,
		records:  records,
		metrics:  m,
		logger:   zap.L().Named("guest_booking"),
		now:      utcNow,
	}
}

func (u *GuestBookingUseCase) OnboardGuest(ctx context.Context, in GuestOnboardingInput) (GuestOnboardingResult, error) {
	res, err := u.onboard(ctx, in)
	u.metrics.GuestOnboarding(onboardingOutcome(res, err))
	return res, err
}

func (u *GuestBookingUseCase) onboard(ctx context.Context, in GuestOnboardingInput) (GuestOnboardingResult, error) {
	in, err := normalizeGuestInput(in)
	if err != nil {
		return GuestOnboardingResult{}, err
	}
	log := withCorrelation(ctx, u.logger).With(
		zap.String("payment_record_id", in.PaymentDocID),
		zap.String("parent_booking_id", in.ParentBookingID),
	)
	log.Info("guest onboarding start")

	rec, err := u.records.GetByID(ctx, in.PaymentDocID)
	if err != nil {
		return GuestOnboardingResult{}, err
	}
	if rec.ID == "" {
		return GuestOnboardingResult{}, fmt.Errorf("%w: payment record %s", entities.ErrNotFound, in.PaymentDocID)
	}
	idx, inv, ok := rec.FindInvitation(in.GuestEmail)
	if !ok {
		return GuestOnboardingResult{}, fmt.Errorf("%w: no invitation for this email", entities.ErrInvitationInvalid)
	}

	if inv.Status != entities.InvitationStatusPending {
		return GuestOnboardingResult{}, fmt.Errorf("%w: invitation is %s", entities.ErrInvitationInvalid, inv.Status)
	}

	// The guest document id is derived from the record and email, so a
	// consistent read finds an earlier attempt even while the group index lags.
	docID := guestBookingDocumentID(rec.ID, in.GuestEmail)
	prior, err := u.bookings.GetByDocumentID(ctx, docID)
	if err != nil {
		return GuestOnboardingResult{}, err
	}
	if prior.DocumentID != "" && producedBy(prior, rec) {
		log.Info("guest booking exists, resuming", zap.String("booking_document_id", prior.DocumentID))
		return u.acceptInvitation(ctx, log, rec, idx, in.GuestEmail, prior, true)
	}

	existing, err := u.bookings.GetByGroupAndEmail(ctx, rec.GroupID, in.GuestEmail)
	if err != nil {
		return GuestOnboardingResult{}, err
	}
	if existing.DocumentID != "" {
		return GuestOnboardingResult{}, fmt.Errorf("%w: email already booked in group %s", entities.ErrDuplicateBooking, rec.GroupID)
	}

	parent, err := u.bookings.GetByDocumentID(ctx, in.ParentBookingID)
	if err != nil {
		return GuestOnboardingResult{}, err
	}
	if parent.DocumentID == "" {
		return GuestOnboardingResult{}, fmt.Errorf("%w: parent booking %s", entities.ErrNotFound, in.ParentBookingID)
	}
	if parent.GroupID != rec.GroupID {
		return GuestOnboardingResult{}, fmt.Errorf("%w: parent booking is not part of group %s", entities.ErrInvalidInput, rec.GroupID)
	}

	now := u.now()
	b := entities.Booking{
		DocumentID:           docID,
		IsMainBooker:         false,
		Email:                in.GuestEmail,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		ReservationFeePaidAt: &now,
		SourcePaymentID:      rec.ID,
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	inheritTerms(parent).applyTo(&b)
	b.RecomputeLedger(now)

	if err := assignCodes(ctx, u.bookings, &b); err != nil {
		return GuestOnboardingResult{}, err
	}

	resumed := false
	created, err := u.bookings.Create(ctx, b)
	if errors.Is(err, entities.ErrDuplicateBooking) {
		// Lost a race with a concurrent attempt for the same invitation.
		again, gerr := u.bookings.GetByDocumentID(ctx, docID)
		if gerr != nil {
			return GuestOnboardingResult{}, gerr
		}
		if again.DocumentID == "" || !producedBy(again, rec) {
			return GuestOnboardingResult{}, err
		}
		created, err, resumed = again, nil, true
	}
	if err != nil {
		log.Warn("guest booking create failed", zap.Error(err))
		return GuestOnboardingResult{}, err
	}
	if !resumed {
		u.metrics.BookingCreated(string(created.BookingType), originGuest)
	}

	return u.acceptInvitation(ctx, log, rec, idx, in.GuestEmail, created, resumed)
}

func (u *GuestBookingUseCase) acceptInvitation(
	ctx context.Context,
	log *zap.Logger,
	rec entities.PaymentRecord,
	idx int,
	email string,
	b entities.Booking,
	resumed bool,
) (GuestOnboardingResult, error) {
	res := GuestOnboardingResult{BookingDocumentID: b.DocumentID, BookingID: b.BookingID, Resumed: resumed}

	_, err := u.records.AcceptInvitation(ctx, rec.ID, idx, email, b.DocumentID, u.now())
	if errors.Is(err, entities.ErrConflict) {
		fresh, gerr := u.records.GetByID(ctx, rec.ID)
		if gerr != nil {
			return GuestOnboardingResult{}, gerr
		}
		_, inv, ok := fresh.FindInvitation(email)
		if !ok || inv.Status != entities.InvitationStatusAccepted || inv.GuestBookingID != b.DocumentID {
			return GuestOnboardingResult{}, fmt.Errorf("%w: invitation changed while onboarding", entities.ErrInvitationInvalid)
		}
		err = nil
	}
	if err != nil {
		log.Error("accepting invitation failed", zap.String("booking_document_id", b.DocumentID), zap.Error(err))
		return GuestOnboardingResult{}, err
	}

	log.Info("guest onboarded",
		zap.String("booking_document_id", b.DocumentID),
		zap.String("booking_id", b.BookingID),
		zap.Bool("resumed", resumed),
	)
	return res, nil
}

// producedBy reports whether b is the guest booking created from rec's invitations.
func producedBy(b entities.Booking, rec entities.PaymentRecord) bool {
	return b.SourcePaymentID == rec.ID && !b.IsMainBooker
}

func normalizeGuestInput(in GuestOnboardingInput) (GuestOnboardingInput, error) {
	in.PaymentDocID = strings.TrimSpace(in.PaymentDocID)
	in.ParentBookingID = strings.TrimSpace(in.ParentBookingID)
	in.GuestEmail = entities.NormalizeEmail(in.GuestEmail)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	switch {
	case in.PaymentDocID == "":
		return in, fmt.Errorf("%w: paymentDocId is required", entities.ErrInvalidInput)
	case in.ParentBookingID == "":
		return in, fmt.Errorf("%w: parentBookingId is required", entities.ErrInvalidInput)
	case in.GuestEmail == "" || !strings.Contains(in.GuestEmail, "@"):
		return in, fmt.Errorf("%w: a valid guestEmail is required", entities.ErrInvalidInput)
	case in.FirstName == "" || in.LastName == "":
		return in, fmt.Errorf("%w: guest first and last name are required", entities.ErrInvalidInput)
	}
	return in, nil
}

func onboardingOutcome(res GuestOnboardingResult, err error) string {
	switch {
	case err == nil && res.Resumed:
		return metrics.OutcomeResumed
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, entities.ErrInvalidInput),
		errors.Is(err, entities.ErrInvitationInvalid),
		errors.Is(err, entities.ErrDuplicateBooking),
		errors.Is(err, entities.ErrNotFound):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
