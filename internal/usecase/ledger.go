package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/infrastructure/logger"
	"tour_billing/internal/infrastructure/metrics"
	"tour_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// maxLedgerAttempts bounds how often a ledger write is retried after losing
// the version check to a concurrent writer.
const maxLedgerAttempts = 3

// ledgerMutation edits the loaded booking in place. Returning false leaves the
// stored booking untouched.
type ledgerMutation func(b *entities.Booking) (bool, error)

// mutateLedger reloads the booking, applies mutate and writes installments,
// status and progress back guarded by the booking version.
func mutateLedger(
	ctx context.Context,
	bookings interfaces.IBookingRepository,
	m *metrics.BookingMetrics,
	documentID string,
	now time.Time,
	mutate ledgerMutation,
) (entities.Booking, error) {
	for attempt := 1; ; attempt++ {
		b, err := bookings.GetByDocumentID(ctx, documentID)
		if err != nil {
			return entities.Booking{}, err
		}
		if b.DocumentID == "" {
			return entities.Booking{}, fmt.Errorf("%w: booking %s", entities.ErrNotFound, documentID)
		}

		changed, err := mutate(&b)
		if err != nil {
			return entities.Booking{}, err
		}
		if !changed {
			return b, nil
		}

		expected := b.Version
		b.RecomputeLedger(now)
		b.UpdatedAt = now

		updated, err := bookings.UpdateLedger(ctx, b, expected)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, entities.ErrConflict) || attempt >= maxLedgerAttempts {
			return entities.Booking{}, err
		}
		m.LedgerConflict()
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func withCorrelation(ctx context.Context, base *zap.Logger) *zap.Logger {
	return logger.FromContext(ctx, base)
}
