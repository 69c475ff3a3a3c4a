package booking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/celosalong/salon-booking-api/internal/catalog"
	"github.com/celosalong/salon-booking-api/internal/email"
	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/notify"
	"github.com/celosalong/salon-booking-api/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName string
	Email        string
	Phone        string
	ServiceID    string
	Date         string // YYYY-MM-DD
	Time         string // HH:mm
	Notes        string
}

// EmailStatus values reported back to the booking form.
const (
	EmailQueued            = "queued"
	EmailSkippedMissingKey = "skipped_missing_key"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   store.BookingRepository
	notify *notify.Dispatcher
}

func NewCreateBooking(repo store.BookingRepository, notify *notify.Dispatcher) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
	}
}

// Execute validates input, persists the pending booking and fires the
// confirmation mails without waiting for them. There is no capacity check
// here; the availability query is the read side of a read-then-decide flow
// and a race can overbook a slot by one.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, string, error) {

	if in.CustomerName == "" || in.Email == "" || in.Phone == "" ||
		in.ServiceID == "" || in.Date == "" || in.Time == "" {
		return nil, "", httperr.ErrBusiness("missing_required_fields")
	}

	if _, ok := catalog.ServiceByID(in.ServiceID); !ok {
		return nil, "", httperr.ErrBusiness("invalid_service")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, "", httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, "", httperr.ErrBusiness("invalid_date_or_time")
	}

	b := &models.Booking{
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		ServiceID:    in.ServiceID,
		Date:         in.Date,
		Time:         in.Time,
		Notes:        in.Notes,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"service":    b.ServiceID,
		"date":       b.Date,
		"time":       b.Time,
	}).Info("booking created")

	emailStatus := EmailQueued
	if !uc.notify.Configured() {
		emailStatus = EmailSkippedMissingKey
	}

	uc.notify.Dispatch(notify.Event{
		Booking: email.BookingEmail{
			CustomerName: in.CustomerName,
			Email:        in.Email,
			Phone:        in.Phone,
			ServiceID:    in.ServiceID,
			Date:         in.Date,
			Time:         in.Time,
			Notes:        in.Notes,
		},
		ConfirmCustomer: in.Email != "",
	})

	return b, emailStatus, nil
}
