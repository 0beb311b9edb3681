package entities

import "errors"

// Error kinds shared by every layer. Use cases wrap them with context
// (fmt.Errorf("%w: ...")) and handlers map them with errors.Is.
//
// Only ErrStorageUnavailable is worth retrying; the rest are terminal.
var (
	ErrInvalidConfig          = errors.New("invalid payment term configuration")
	ErrScheduleInfeasible     = errors.New("schedule infeasible")
	ErrInvitationInvalid      = errors.New("invitation invalid")
	ErrDuplicateBooking       = errors.New("duplicate booking")
	ErrInstallmentAlreadyPaid = errors.New("installment already paid")
	ErrNotFound               = errors.New("not found")
	ErrStorageUnavailable     = errors.New("storage unavailable")
	ErrInvalidInput           = errors.New("invalid input")

	// ErrConflict reports a lost conditional write (stale version or status).
	ErrConflict = errors.New("concurrent modification")
)
