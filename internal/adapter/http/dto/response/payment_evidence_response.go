package response

import (
	"time"

	"tour_billing/internal/domain/entities"
)

type PaymentEvidenceResponse struct {
	ID                string     `json:"id"`
	BookingDocumentID string     `json:"booking_document_id"`
	InstallmentTerm   string     `json:"installment_term"`
	Amount            string     `json:"amount"`
	Currency          string     `json:"currency"`
	ScreenshotRef     string     `json:"screenshot_ref"`
	Status            string     `json:"status"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	DecidedAt         *time.Time `json:"decided_at,omitempty"`
}

func FromPaymentEvidence(e entities.PaymentEvidence) PaymentEvidenceResponse {
	return PaymentEvidenceResponse{
		ID:                e.ID,
		BookingDocumentID: e.BookingDocumentID,
		InstallmentTerm:   string(e.InstallmentTerm),
		Amount:            e.Amount.StringFixed(2),
		Currency:          e.Currency,
		ScreenshotRef:     e.ScreenshotRef,
		Status:            string(e.Status),
		RejectionReason:   e.RejectionReason,
		CreatedAt:         e.CreatedAt,
		DecidedAt:         e.DecidedAt,
	}
}

func FromPaymentEvidenceList(list []entities.PaymentEvidence) []PaymentEvidenceResponse {
	out := make([]PaymentEvidenceResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromPaymentEvidence(e))
	}
	return out
}
