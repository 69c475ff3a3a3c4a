package booking

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	domain "github.com/celosalong/salon-booking-api/internal/domain/booking"
	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/store"
)

// UpdateStatus is the admin transition: any of the four enumerated values,
// except that completed requires a confirmed booking.
type UpdateStatus struct {
	repo store.BookingRepository
}

func NewUpdateStatus(repo store.BookingRepository) *UpdateStatus {
	return &UpdateStatus{repo: repo}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id string,
	status string,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if err := domain.ChangeStatus(b, next); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, id, store.BookingUpdate{Status: &b.Status})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": id,
		"status":     string(next),
	}).Info("booking status changed")

	return updated, nil
}
