package entities

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PaymentType selects how a booking's cost is split.
type PaymentType string

const (
	PaymentTypeFullPayment      PaymentType = "full_payment"
	PaymentTypeMonthlyScheduled PaymentType = "monthly_scheduled"
)

const (
	// MaxMonthlyInstallments mirrors the p1..p4 installment slots of a stored booking.
	MaxMonthlyInstallments = 4

	percentageTolerance = 0.01
)

// PaymentTermConfiguration is an operator-defined payment policy.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Bookings copy the computed schedule; they never point back at a live term,
// so editing or deactivating a term does not touch existing bookings.
type PaymentTermConfiguration struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	PaymentType        PaymentType `json:"payment_type"`
	DaysRequired       int         `json:"days_required"`
	MonthsRequired     int         `json:"months_required"`
	MonthlyPercentages []float64   `json:"monthly_percentages"`
	IsActive           bool        `json:"is_active"`
	SortOrder          int         `json:"sort_order"`
	Color              string      `json:"color"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// Validate rejects configurations that could not produce a consistent schedule.
func (c PaymentTermConfiguration) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.DaysRequired < 0 {
		return fmt.Errorf("%w: days_required must not be negative", ErrInvalidConfig)
	}

	switch c.PaymentType {
	case PaymentTypeFullPayment:
		return nil
	case PaymentTypeMonthlyScheduled:
	default:
		return fmt.Errorf("%w: unknown payment_type %q", ErrInvalidConfig, c.PaymentType)
	}

	if c.MonthsRequired < 1 || c.MonthsRequired > MaxMonthlyInstallments {
		return fmt.Errorf("%w: months_required must be between 1 and %d", ErrInvalidConfig, MaxMonthlyInstallments)
	}
	if len(c.MonthlyPercentages) != c.MonthsRequired {
		return fmt.Errorf("%w: expected %d monthly percentages, got %d", ErrInvalidConfig, c.MonthsRequired, len(c.MonthlyPercentages))
	}

	sum := 0.0
	for i, pct := range c.MonthlyPercentages {
		if pct <= 0 {
			return fmt.Errorf("%w: monthly percentage %d must be positive", ErrInvalidConfig, i+1)
		}
		sum += pct
	}
	if math.Abs(sum-100) > percentageTolerance {
		return fmt.Errorf("%w: monthly percentages sum to %.2f, expected 100", ErrInvalidConfig, sum)
	}
	return nil
}
