package interfaces

import (
	"context"
	"time"

	"tour_billing/internal/domain/entities"
)

type IPaymentEvidenceRepository interface {
	Create(ctx context.Context, e entities.PaymentEvidence) (entities.PaymentEvidence, error)
	GetByID(ctx context.Context, id string) (entities.PaymentEvidence, error)
	ListByStatus(ctx context.Context, status entities.EvidenceStatus) ([]entities.PaymentEvidence, error)
	ListByBookingDocumentID(ctx context.Context, bookingDocumentID string) ([]entities.PaymentEvidence, error)
	// UpdateStatus moves the evidence out of from into to. It returns
	// entities.ErrConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to entities.EvidenceStatus, reason string, decidedAt time.Time) (entities.PaymentEvidence, error)
}
