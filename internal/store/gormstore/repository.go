package gormstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/celosalong/salon-booking-api/internal/domain/booking"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/stats"
	"github.com/celosalong/salon-booking-api/internal/store"
	"github.com/celosalong/salon-booking-api/internal/timezone"
)

// BookingStore is the Postgres-backed repository, selected when
// DATABASE_URL is set. Same contract as the memory store, so the capacity
// check stays correct across replicas sharing one database connection.
type BookingStore struct {
	db *gorm.DB

	Now func() time.Time
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db, Now: timezone.Now}
}

func (r *BookingStore) Create(ctx context.Context, b *models.Booking) error {
	now := r.Now()
	b.ID = uuid.NewString()
	b.Status = string(booking.InitialStatus())
	b.CreatedAt = now
	b.UpdatedAt = now

	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingStore) GetAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingStore) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingStore) Update(ctx context.Context, id string, upd store.BookingUpdate) (*models.Booking, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{"updated_at": r.Now()}
	put := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	put("customer_name", upd.CustomerName)
	put("email", upd.Email)
	put("phone", upd.Phone)
	put("service_id", upd.ServiceID)
	put("date", upd.Date)
	put("time", upd.Time)
	put("notes", upd.Notes)
	put("status", upd.Status)

	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, b.ID)
}

func (r *BookingStore) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingStore) GetStats(ctx context.Context, now time.Time) (store.BookingCounters, error) {
	// Revenue needs the static catalog prices, so the aggregate runs over a
	// snapshot rather than in SQL.
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return store.BookingCounters{}, err
	}
	return stats.Counters(bookings, now), nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (r *ReviewStore) GetAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewStore) SetVisibility(ctx context.Context, id string, visible bool) (*models.Review, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update("is_visible", visible)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}
