package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EvidenceStatus string

const (
	EvidenceStatusPending  EvidenceStatus = "pending"
	EvidenceStatusApproved EvidenceStatus = "approved"
	EvidenceStatusRejected EvidenceStatus = "rejected"
)

var evidenceTransitions = map[EvidenceStatus][]EvidenceStatus{
	EvidenceStatusPending: {EvidenceStatusApproved, EvidenceStatusRejected},
}

func (s EvidenceStatus) CanTransitionTo(next EvidenceStatus) bool {
	for _, allowed := range evidenceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s EvidenceStatus) IsTerminal() bool {
	return len(evidenceTransitions[s]) == 0
}

func (s EvidenceStatus) Valid() bool {
	return s == EvidenceStatusPending || s == EvidenceStatusApproved || s == EvidenceStatusRejected
}

// PaymentEvidence is a bank-transfer screenshot awaiting operator review.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-index: status / created_at
//   - GSI booking_document_id-index: booking_document_id
type PaymentEvidence struct {
	ID                string          `json:"id"`
	BookingDocumentID string          `json:"booking_document_id"`
	InstallmentTerm   InstallmentTerm `json:"installment_term"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	ScreenshotRef     string          `json:"screenshot_ref"`
	Status            EvidenceStatus  `json:"status"`
	RejectionReason   string          `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	DecidedAt         *time.Time      `json:"decided_at,omitempty"`
}
