package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentProvider string

const (
	PaymentProviderCard         PaymentProvider = "card"
	PaymentProviderBankTransfer PaymentProvider = "bank_transfer"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
)

var invitationTransitions = map[InvitationStatus][]InvitationStatus{
	InvitationStatusPending: {InvitationStatusAccepted},
}

func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	for _, allowed := range invitationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// GuestInvitation is an open offer for one email to join the group.
// GuestBookingID holds the guest booking's document id once accepted.
type GuestInvitation struct {
	Email          string           `json:"email"`
	Status         InvitationStatus `json:"status"`
	AcceptedAt     *time.Time       `json:"accepted_at,omitempty"`
	GuestBookingID string           `json:"guest_booking_id,omitempty"`
}

// PaymentRecord is the originating payment handed over by checkout.
//
// Storage model (DynamoDB):
//   - PK: id (derived from provider + provider_payment_id)
//   - guest_invitations embedded as a list
type PaymentRecord struct {
	ID                string            `json:"id"`
	Provider          PaymentProvider   `json:"provider"`
	ProviderPaymentID string            `json:"provider_payment_id"`
	PayerEmail        string            `json:"payer_email"`
	TourPackageID     string            `json:"tour_package_id"`
	TourDate          time.Time         `json:"tour_date"`
	BookingType       BookingType       `json:"booking_type"`
	AmountPaid        decimal.Decimal   `json:"amount_paid"`
	Currency          string            `json:"currency"`
	BookingDocumentID string            `json:"booking_document_id,omitempty"`
	GroupID           string            `json:"group_id,omitempty"`
	GuestInvitations  []GuestInvitation `json:"guest_invitations,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// FindInvitation looks an invitation up by normalized email.
func (p PaymentRecord) FindInvitation(email string) (int, GuestInvitation, bool) {
	want := NormalizeEmail(email)
	for i, inv := range p.GuestInvitations {
		if NormalizeEmail(inv.Email) == want {
			return i, inv, true
		}
	}
	return -1, GuestInvitation{}, false
}
