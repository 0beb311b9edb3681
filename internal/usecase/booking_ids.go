package usecase

import (
	"context"
	"strings"

	"tour_billing/internal/domain/entities"
	"tour_billing/internal/domain/identifier"
	"tour_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Document ids are name-based so a replayed hand-off or a retried onboarding
// lands on the same documents instead of creating new ones.

func PaymentRecordID(provider entities.PaymentProvider, providerPaymentID string) string {
	return derivedID("payment", string(provider), strings.TrimSpace(providerPaymentID))
}

func mainBookingDocumentID(recordID string) string {
	return derivedID("booking", recordID)
}

func guestBookingDocumentID(recordID, email string) string {
	return derivedID("booking", recordID, entities.NormalizeEmail(email))
}

func groupIDFor(recordID string) string {
	return derivedID("group", recordID)
}

func derivedID(parts ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(parts, ":"))).String()
}

// assignCodes sets BookingID from a fresh per-package count and, for duo and
// group bookings, the member code.
func assignCodes(ctx context.Context, bookings interfaces.IBookingRepository, b *entities.Booking) error {
	count, err := bookings.CountByTourPackage(ctx, b.TourPackageID)
	if err != nil {
		return err
	}
	b.BookingID = identifier.NextBookingCode(b.TourDate, count)

	if !b.BookingType.IsShared() {
		b.MemberCode = ""
		return nil
	}
	code, err := identifier.NextGroupMemberCode(b.BookingType, b.TourName, b.FirstName, b.LastName, b.Email)
	if err != nil {
		return err
	}
	b.MemberCode = code
	return nil
}
