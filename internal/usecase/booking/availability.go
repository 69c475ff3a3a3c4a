package booking

import (
	"context"
	"time"

	domain "github.com/celosalong/salon-booking-api/internal/domain/booking"
	"github.com/celosalong/salon-booking-api/internal/store"
)

// GetAvailability computes the bookable slots for one date from the
// repository's per-date snapshot.
type GetAvailability struct {
	repo store.BookingRepository
}

func NewGetAvailability(repo store.BookingRepository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	now time.Time,
) ([]domain.Slot, error) {

	bookings, err := uc.repo.GetByDate(ctx, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(date, now, bookings), nil
}
