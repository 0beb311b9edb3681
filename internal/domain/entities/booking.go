package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BookingType string

const (
	BookingTypeSingle BookingType = "single"
	BookingTypeDuo    BookingType = "duo"
	BookingTypeGroup  BookingType = "group"
)

// IsShared reports whether the booking type has a group and member codes.
func (t BookingType) IsShared() bool {
	return t == BookingTypeDuo || t == BookingTypeGroup
}

func (t BookingType) Valid() bool {
	return t == BookingTypeSingle || t.IsShared()
}

// BookingStatus is derived from the installment ledger; it is never set directly.
type BookingStatus string

const (
	BookingStatusReserved      BookingStatus = "reserved"
	BookingStatusPartiallyPaid BookingStatus = "partially_paid"
	BookingStatusOverdue       BookingStatus = "overdue"
	BookingStatusFullyPaid     BookingStatus = "fully_paid"
)

// InstallmentTerm labels one installment: P1..P4 or full_payment.
type InstallmentTerm string

const InstallmentTermFullPayment InstallmentTerm = "full_payment"

func MonthlyInstallmentTerm(n int) InstallmentTerm {
	return InstallmentTerm(fmt.Sprintf("P%d", n))
}

// ParseInstallmentTerm accepts "P1".."P4" (any case) and "full_payment".
func ParseInstallmentTerm(raw string) (InstallmentTerm, bool) {
	v := strings.TrimSpace(raw)
	if strings.EqualFold(v, string(InstallmentTermFullPayment)) {
		return InstallmentTermFullPayment, true
	}
	for n := 1; n <= MaxMonthlyInstallments; n++ {
		term := MonthlyInstallmentTerm(n)
		if strings.EqualFold(v, string(term)) {
			return term, true
		}
	}
	return "", false
}

type Installment struct {
	Term             InstallmentTerm `json:"term"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          time.Time       `json:"due_date"`
	DatePaid         *time.Time      `json:"date_paid,omitempty"`
	PaidByEvidenceID string          `json:"paid_by_evidence_id,omitempty"`
}

func (i Installment) IsPaid() bool {
	return i.DatePaid != nil
}

// Booking is one traveller's commitment to a tour.
//
// Storage model (DynamoDB):
//   - PK: document_id
//   - GSI group_id-index: group_id / email
//   - GSI tour_package_id-index: tour_package_id
//   - installments flattened into p1_*..p4_* and full_payment_* attributes
//
// Version guards ledger writes; every successful write increments it.
type Booking struct {
	DocumentID   string      `json:"document_id"`
	BookingID    string      `json:"booking_id"`
	GroupID      string      `json:"group_id,omitempty"`
	MemberCode   string      `json:"member_code,omitempty"`
	BookingType  BookingType `json:"booking_type"`
	IsMainBooker bool        `json:"is_main_booker"`

	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	TourPackageID string    `json:"tour_package_id"`
	TourName      string    `json:"tour_name"`
	TourDate      time.Time `json:"tour_date"`
	ReturnDate    time.Time `json:"return_date"`

	OriginalTourCost     decimal.Decimal  `json:"original_tour_cost"`
	DiscountedTourCost   *decimal.Decimal `json:"discounted_tour_cost,omitempty"`
	Currency             string           `json:"currency"`
	ReservationFee       decimal.Decimal  `json:"reservation_fee"`
	ReservationFeePaidAt *time.Time       `json:"reservation_fee_paid_at,omitempty"`

	PaymentPlan     string        `json:"payment_plan"`
	PaymentTermID   string        `json:"payment_term_id"`
	Installments    []Installment `json:"installments"`
	BookingStatus   BookingStatus `json:"booking_status"`
	PaymentProgress int           `json:"payment_progress"`

	SourcePaymentID string    `json:"source_payment_id"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TotalCost is the amount the installments must add up to.
func (b Booking) TotalCost() decimal.Decimal {
	if b.DiscountedTourCost != nil {
		return *b.DiscountedTourCost
	}
	return b.OriginalTourCost
}

// FindInstallment returns the index of the installment labelled term.
func (b Booking) FindInstallment(term InstallmentTerm) (int, bool) {
	for i, inst := range b.Installments {
		if inst.Term == term {
			return i, true
		}
	}
	return -1, false
}

// RecomputeLedger derives BookingStatus and PaymentProgress from the installments.
func (b *Booking) RecomputeLedger(now time.Time) {
	scheduled := decimal.Zero
	paid := decimal.Zero
	paidCount := 0
	overdue := false
	today := DateOnly(now)

	for _, inst := range b.Installments {
		scheduled = scheduled.Add(inst.Amount)
		if inst.IsPaid() {
			paid = paid.Add(inst.Amount)
			paidCount++
			continue
		}
		if DateOnly(inst.DueDate).Before(today) {
			overdue = true
		}
	}

	switch {
	case len(b.Installments) > 0 && paidCount == len(b.Installments):
		b.BookingStatus = BookingStatusFullyPaid
	case overdue:
		b.BookingStatus = BookingStatusOverdue
	case paidCount > 0:
		b.BookingStatus = BookingStatusPartiallyPaid
	default:
		b.BookingStatus = BookingStatusReserved
	}

	if scheduled.IsPositive() {
		b.PaymentProgress = int(paid.Mul(decimal.NewFromInt(100)).Div(scheduled).Floor().IntPart())
	} else {
		b.PaymentProgress = 0
	}
	if b.BookingStatus == BookingStatusFullyPaid {
		b.PaymentProgress = 100
	}
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeEmail is the canonical form used for (group_id, email) uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
