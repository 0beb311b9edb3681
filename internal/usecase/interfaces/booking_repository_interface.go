package interfaces

import (
	"context"

	"tour_billing/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for bookings.
//
//   - Create enforces one booking per (group_id, email) and returns
//     entities.ErrDuplicateBooking when the pair is taken.
//   - UpdateLedger writes installments, status and progress only when the stored
//     version equals expectedVersion, returning entities.ErrConflict otherwise.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByDocumentID(ctx context.Context, documentID string) (entities.Booking, error)
	GetByGroupAndEmail(ctx context.Context, groupID, email string) (entities.Booking, error)
	ListByGroupID(ctx context.Context, groupID string) ([]entities.Booking, error)
	CountByTourPackage(ctx context.Context, tourPackageID string) (int, error)
	UpdateLedger(ctx context.Context, b entities.Booking, expectedVersion int64) (entities.Booking, error)
}
