package store

import (
	"context"
	"errors"
	"time"

	"github.com/celosalong/salon-booking-api/internal/models"
)

// ErrNotFound reports an id that is logically absent. It is never conflated
// with validation failures.
var ErrNotFound = errors.New("record not found")

// BookingUpdate merges into an existing record; nil fields are left alone.
type BookingUpdate struct {
	CustomerName *string
	Email        *string
	Phone        *string
	ServiceID    *string
	Date         *string
	Time         *string
	Notes        *string
	Status       *string
}

// BookingCounters is the point-in-time aggregate behind the dashboard KPI
// row. Derived by a full rescan on every call; nothing incremental.
type BookingCounters struct {
	TodayCount     int     `json:"today_count"`
	MonthCount     int     `json:"month_count"`
	PendingCount   int     `json:"pending_count"`
	CompletedCount int     `json:"completed_count"`
	MonthRevenue   float64 `json:"month_revenue"`
	TotalBookings  int     `json:"total_bookings"`
}

type BookingRepository interface {
	// Create assigns a fresh id, pending status and timestamps.
	Create(ctx context.Context, b *models.Booking) error

	// GetAll returns every booking, newest created first.
	GetAll(ctx context.Context) ([]models.Booking, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// GetByDate returns all bookings on a YYYY-MM-DD date regardless of
	// status; status filtering is the caller's job.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)

	// Update merges fields and re-stamps the update time. ErrNotFound when
	// the id is absent.
	Update(ctx context.Context, id string, upd BookingUpdate) (*models.Booking, error)

	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)

	GetStats(ctx context.Context, now time.Time) (BookingCounters, error)
}

type ReviewRepository interface {
	GetAll(ctx context.Context) ([]models.Review, error)

	// SetVisibility toggles the one mutable review field. ErrNotFound when
	// the id is absent.
	SetVisibility(ctx context.Context, id string, visible bool) (*models.Review, error)
}
