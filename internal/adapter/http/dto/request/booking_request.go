package request

import (
	"errors"
	"strings"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("invalid date")

// CheckoutRequest is handed over by the checkout collaborator once the
// provider reports the reservation payment.
type CheckoutRequest struct {
	Provider          string          `json:"provider" binding:"required"`
	ProviderPaymentID string          `json:"provider_payment_id" binding:"required"`
	PayerEmail        string          `json:"payer_email" binding:"required"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	TourPackageID     string          `json:"tour_package_id" binding:"required"`
	TourDate          string          `json:"tour_date" binding:"required"`
	BookingType       string          `json:"booking_type" binding:"required"`
	PaymentTermID     string          `json:"payment_term_id" binding:"required"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	Currency          string          `json:"currency"`
	GuestEmails       []string        `json:"guest_emails"`
}

func (r CheckoutRequest) ToInput() (usecase.CheckoutInput, error) {
	tourDate, err := ParseDate(r.TourDate)
	if err != nil {
		return usecase.CheckoutInput{}, err
	}
	return usecase.CheckoutInput{
		Provider:          entities.PaymentProvider(strings.ToLower(strings.TrimSpace(r.Provider))),
		ProviderPaymentID: r.ProviderPaymentID,
		PayerEmail:        r.PayerEmail,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		TourPackageID:     r.TourPackageID,
		TourDate:          tourDate,
		BookingType:       entities.BookingType(strings.ToLower(strings.TrimSpace(r.BookingType))),
		PaymentTermID:     r.PaymentTermID,
		AmountPaid:        r.AmountPaid,
		Currency:          r.Currency,
		GuestEmails:       r.GuestEmails,
	}, nil
}

// InstallmentOverrideRequest marks an installment paid on DatePaid, or
// unpaid when DatePaid is null.
type InstallmentOverrideRequest struct {
	DatePaid *string `json:"date_paid"`
}

func (r InstallmentOverrideRequest) ResolveDatePaid() (*time.Time, error) {
	if r.DatePaid == nil || strings.TrimSpace(*r.DatePaid) == "" {
		return nil, nil
	}
	d, err := ParseDate(*r.DatePaid)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the UTC
// calendar date.
func ParseDate(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if d, err := time.Parse(time.DateOnly, v); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return entities.DateOnly(ts), nil
	}
	return time.Time{}, ErrInvalidDate
}
