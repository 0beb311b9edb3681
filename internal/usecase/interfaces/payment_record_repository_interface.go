package interfaces

import (
	"context"
	"time"

	"tour_billing/internal/domain/entities"
)

// IPaymentRecordRepository abstracts persistence for originating payments and
// the guest invitations embedded in them.
type IPaymentRecordRepository interface {
	// Create returns entities.ErrConflict when a record with the same id exists.
	Create(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	SetBookingDocumentID(ctx context.Context, id, bookingDocumentID string, at time.Time) (entities.PaymentRecord, error)
	// AcceptInvitation flips the invitation at index from pending to accepted,
	// guarded on its current status and email. A failed guard returns
	// entities.ErrConflict.
	AcceptInvitation(ctx context.Context, id string, index int, email, guestBookingID string, at time.Time) (entities.PaymentRecord, error)
}
