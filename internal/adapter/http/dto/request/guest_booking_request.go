package request

import (
	"strings"

	"tour_billing/internal/usecase"
)

type GuestData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// GuestBookingRequest is posted by the guest invitation page. Field names
// follow the page's camelCase payload.
type GuestBookingRequest struct {
	PaymentDocID    string    `json:"paymentDocId" binding:"required"`
	ParentBookingID string    `json:"parentBookingId" binding:"required"`
	GuestEmail      string    `json:"guestEmail" binding:"required"`
	GuestData       GuestData `json:"guestData"`
}

func (r GuestBookingRequest) ToInput() usecase.GuestOnboardingInput {
	return usecase.GuestOnboardingInput{
		PaymentDocID:    strings.TrimSpace(r.PaymentDocID),
		ParentBookingID: strings.TrimSpace(r.ParentBookingID),
		GuestEmail:      r.GuestEmail,
		FirstName:       strings.TrimSpace(r.GuestData.FirstName),
		LastName:        strings.TrimSpace(r.GuestData.LastName),
	}
}
