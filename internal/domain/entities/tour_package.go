package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TourPackage is read-only here; the dashboard owns its CRUD.
type TourPackage struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	TourDates      []time.Time      `json:"tour_dates"`
	DurationDays   int              `json:"duration_days"`
	OriginalCost   decimal.Decimal  `json:"original_cost"`
	DiscountedCost *decimal.Decimal `json:"discounted_cost,omitempty"`
	ReservationFee decimal.Decimal  `json:"reservation_fee"`
	Currency       string           `json:"currency"`
}

// HasTourDate reports whether date (compared by calendar day) is offered.
func (p TourPackage) HasTourDate(date time.Time) bool {
	want := DateOnly(date)
	for _, d := range p.TourDates {
		if DateOnly(d).Equal(want) {
			return true
		}
	}
	return false
}

// ReturnDate is the last day of the tour starting on tourDate.
func (p TourPackage) ReturnDate(tourDate time.Time) time.Time {
	if p.DurationDays <= 1 {
		return DateOnly(tourDate)
	}
	return DateOnly(tourDate).AddDate(0, 0, p.DurationDays-1)
}

func (p TourPackage) Price() decimal.Decimal {
	if p.DiscountedCost != nil {
		return *p.DiscountedCost
	}
	return p.OriginalCost
}
