// Package identifier produces the business-facing booking and member codes.
//
// Neither function reads storage. Callers pass counts taken from a fresh query
// right before generating, so two concurrent checkouts for the same package
// can still race to the same booking code.
package identifier

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"tour_billing/internal/domain/entities"
)

const (
	tagModulo    = 10000
	memberModulo = 999
)

// NextBookingCode returns "YYMM-XXXX" where XXXX is existingCountForPackage+1.
// The sequence is zero-padded to four digits and never wraps: from a count of
// 9999 on it widens ("YYMM-10000"), so codes stay unique within a package.
func NextBookingCode(tourDate time.Time, existingCountForPackage int) string {
	if existingCountForPackage < 0 {
		existingCountForPackage = 0
	}
	d := tourDate.UTC()
	return fmt.Sprintf("%02d%02d-%04d", d.Year()%100, int(d.Month()), existingCountForPackage+1)
}

// NextGroupMemberCode derives "{DB|GB}-{initials}-{tag}-{member}" from the
// traveller identity. The same identity always yields the same code.
// Collisions are tolerated: tag has 10000 values and member 999.
func NextGroupMemberCode(bookingType entities.BookingType, tourName, firstName, lastName, email string) (string, error) {
	var prefix string
	switch bookingType {
	case entities.BookingTypeDuo:
		prefix = "DB"
	case entities.BookingTypeGroup:
		prefix = "GB"
	default:
		return "", fmt.Errorf("%w: member codes exist only for duo and group bookings", entities.ErrInvalidInput)
	}

	h := identityHash(tourName, firstName, lastName, email)
	tag := h % tagModulo
	member := h%memberModulo + 1

	return fmt.Sprintf("%s-%s-%04d-%03d", prefix, initials(firstName, lastName), tag, member), nil
}

func identityHash(parts ...string) int64 {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return int64Abs(stringHash(strings.Join(normalized, "|")))
}

// stringHash is the 31-multiplier rolling hash over UTF-16 code units with
// 32-bit wraparound. Existing member codes were produced with it; changing it
// changes every code.
func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := surrogates(r)
			h = 31*h + int32(hi)
			h = 31*h + int32(lo)
			continue
		}
		h = 31*h + int32(r)
	}
	return h
}

func surrogates(r rune) (rune, rune) {
	r -= 0x10000
	return 0xD800 + (r>>10)&0x3FF, 0xDC00 + r&0x3FF
}

func int64Abs(v int32) int64 {
	x := int64(v)
	if x < 0 {
		return -x
	}
	return x
}

func initials(firstName, lastName string) string {
	return initial(firstName) + initial(lastName)
}

func initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return strings.ToUpper(string(r))
		}
	}
	return "X"
}
