package booking

import "github.com/celosalong/salon-booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// AllStatuses is ordered the way the dashboard reports them. The status
// distribution must always carry all four, zero-filled.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

// CanTransition gates admin status changes. The only lifecycle rule is
// that a booking completes from confirmed; everything else is at the
// admin's discretion.
func CanTransition(current, next Status) error {
	if next == StatusCompleted && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
