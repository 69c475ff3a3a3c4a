package booking

import (
	"time"

	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/validators"
)

// ===============================
// Domain Actions
// ===============================

// CancelSelfService applies the customer cancellation rules: the phone on
// file must match digits-only, the booking must not already be cancelled,
// and its start must still be in the future.
func CancelSelfService(b *models.Booking, phone string, now time.Time) error {
	if !validators.PhoneEqual(b.Phone, phone) {
		return httperr.ErrBusiness("phone_mismatch")
	}

	if Status(b.Status) == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}

	start, err := StartTime(b, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if start.Before(now) {
		return httperr.ErrBusiness("booking_in_past")
	}

	b.Status = string(StatusCancelled)
	return nil
}

// ChangeStatus applies an admin transition after lifecycle validation.
func ChangeStatus(b *models.Booking, next Status) error {
	if err := CanTransition(Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(next)
	return nil
}

// StartTime resolves the booking's date+time in the salon's location.
func StartTime(b *models.Booking, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
}
