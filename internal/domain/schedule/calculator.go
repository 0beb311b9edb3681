// Package schedule turns a payment term into concrete installments.
//
// Compute is a pure function: the same inputs always produce the same
// installments, which is what lets bookings store the result as a snapshot.
package schedule

import (
	"fmt"
	"time"

	"tour_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	// AmountPlaces is the rounding precision for every installment but the last.
	AmountPlaces = 2

	monthlyDueDay = 2
)

var hundred = decimal.NewFromInt(100)

// Compute builds the installments for term on a tour starting at tourDate.
//
// bookedAt is the reference date the schedule is computed against: monthly
// installments start the month after it, and a full-payment due date that
// already passed collapses to it.
func Compute(term entities.PaymentTermConfiguration, tourDate time.Time, totalCost decimal.Decimal, bookedAt time.Time) ([]entities.Installment, error) {
	if err := term.Validate(); err != nil {
		return nil, err
	}
	if !totalCost.IsPositive() {
		return nil, fmt.Errorf("%w: total cost must be positive", entities.ErrInvalidInput)
	}
	if tourDate.IsZero() {
		return nil, fmt.Errorf("%w: tour date is required", entities.ErrInvalidInput)
	}

	switch term.PaymentType {
	case entities.PaymentTypeFullPayment:
		return fullPayment(term, tourDate, totalCost, bookedAt), nil
	default:
		return monthly(term, tourDate, totalCost, bookedAt)
	}
}

func fullPayment(term entities.PaymentTermConfiguration, tourDate time.Time, totalCost decimal.Decimal, bookedAt time.Time) []entities.Installment {
	due := entities.DateOnly(tourDate).AddDate(0, 0, -term.DaysRequired)
	if !bookedAt.IsZero() {
		if booked := entities.DateOnly(bookedAt); due.Before(booked) {
			due = booked
		}
	}
	return []entities.Installment{{
		Term:    entities.InstallmentTermFullPayment,
		Amount:  totalCost,
		DueDate: due,
	}}
}

func monthly(term entities.PaymentTermConfiguration, tourDate time.Time, totalCost decimal.Decimal, bookedAt time.Time) ([]entities.Installment, error) {
	if bookedAt.IsZero() {
		return nil, fmt.Errorf("%w: booking date is required for a monthly schedule", entities.ErrScheduleInfeasible)
	}

	booked := bookedAt.UTC()
	first := time.Date(booked.Year(), booked.Month()+1, monthlyDueDay, 0, 0, 0, 0, time.UTC)
	tour := entities.DateOnly(tourDate)

	n := term.MonthsRequired
	if last := first.AddDate(0, n-1, 0); last.After(tour) {
		return nil, fmt.Errorf("%w: %d monthly installments from %s end on %s, after the tour date %s",
			entities.ErrScheduleInfeasible, n, first.Format(time.DateOnly), last.Format(time.DateOnly), tour.Format(time.DateOnly))
	}

	out := make([]entities.Installment, 0, n)
	allocated := decimal.Zero
	for i, pct := range term.MonthlyPercentages {
		amount := totalCost.Mul(decimal.NewFromFloat(pct)).Div(hundred).Round(AmountPlaces)
		if i == n-1 {
			// The last bucket absorbs the rounding remainder.
			amount = totalCost.Sub(allocated)
		}
		allocated = allocated.Add(amount)
		out = append(out, entities.Installment{
			Term:    entities.MonthlyInstallmentTerm(i + 1),
			Amount:  amount,
			DueDate: first.AddDate(0, i, 0),
		})
	}
	return out, nil
}

// Total sums installment amounts.
func Total(installments []entities.Installment) decimal.Decimal {
	sum := decimal.Zero
	for _, inst := range installments {
		sum = sum.Add(inst.Amount)
	}
	return sum
}
