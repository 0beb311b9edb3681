package request

import (
	"strings"

	"tour_billing/internal/domain/entities"
)

type PaymentTermRequest struct {
	Name               string    `json:"name" binding:"required"`
	Description        string    `json:"description"`
	PaymentType        string    `json:"payment_type" binding:"required"`
	DaysRequired       int       `json:"days_required"`
	MonthsRequired     int       `json:"months_required"`
	MonthlyPercentages []float64 `json:"monthly_percentages"`
	IsActive           *bool     `json:"is_active"`
	Color              string    `json:"color"`
}

// ToEntity builds the configuration to validate. Terms are active unless the
// request says otherwise.
func (r PaymentTermRequest) ToEntity() entities.PaymentTermConfiguration {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.PaymentTermConfiguration{
		Name:               r.Name,
		Description:        r.Description,
		PaymentType:        entities.PaymentType(strings.ToLower(strings.TrimSpace(r.PaymentType))),
		DaysRequired:       r.DaysRequired,
		MonthsRequired:     r.MonthsRequired,
		MonthlyPercentages: r.MonthlyPercentages,
		IsActive:           active,
		Color:              r.Color,
	}
}
