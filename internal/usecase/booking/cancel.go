package booking

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/celosalong/salon-booking-api/internal/domain/booking"
	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/store"
)

// CancelBooking is the customer self-service flow: id plus the phone number
// on file, re-verified digits-only.
type CancelBooking struct {
	repo store.BookingRepository
}

func NewCancelBooking(repo store.BookingRepository) *CancelBooking {
	return &CancelBooking{repo: repo}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	id string,
	phone string,
	now time.Time,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if err := domain.CancelSelfService(b, phone, now); err != nil {
		return nil, err
	}

	cancelled := string(domain.StatusCancelled)
	updated, err := uc.repo.Update(ctx, id, store.BookingUpdate{Status: &cancelled})
	if err != nil {
		return nil, err
	}

	logrus.WithField("booking_id", id).Info("booking cancelled by customer")

	return updated, nil
}
