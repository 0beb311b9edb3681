package response

import (
	"time"

	"tour_billing/internal/domain/entities"
)

type PaymentTermResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	PaymentType        string    `json:"payment_type"`
	DaysRequired       int       `json:"days_required"`
	MonthsRequired     int       `json:"months_required"`
	MonthlyPercentages []float64 `json:"monthly_percentages"`
	IsActive           bool      `json:"is_active"`
	SortOrder          int       `json:"sort_order"`
	Color              string    `json:"color"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPaymentTerm(c entities.PaymentTermConfiguration) PaymentTermResponse {
	pcts := c.MonthlyPercentages
	if pcts == nil {
		pcts = []float64{}
	}
	return PaymentTermResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		PaymentType:        string(c.PaymentType),
		DaysRequired:       c.DaysRequired,
		MonthsRequired:     c.MonthsRequired,
		MonthlyPercentages: pcts,
		IsActive:           c.IsActive,
		SortOrder:          c.SortOrder,
		Color:              c.Color,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromPaymentTerms(list []entities.PaymentTermConfiguration) []PaymentTermResponse {
	out := make([]PaymentTermResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromPaymentTerm(c))
	}
	return out
}
