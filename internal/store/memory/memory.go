package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/celosalong/salon-booking-api/internal/domain/booking"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/stats"
	"github.com/celosalong/salon-booking-api/internal/store"
	"github.com/celosalong/salon-booking-api/internal/timezone"
)

// Store keeps bookings and reviews in memory, optionally mirrored to a JSON
// file. It is an injected object, never package state, so tests construct
// isolated instances and a database store can replace it behind the same
// contract.
//
// A single mutex serializes mutations; across replicas there is no shared
// state, so deploy one instance (or the gorm store) to keep per-slot
// capacity honest.
type Store struct {
	mu       sync.Mutex
	bookings []models.Booking

	mirrorPath string

	// Now is swappable in tests.
	Now func() time.Time
}

func NewStore(mirrorPath string) *Store {
	s := &Store{
		mirrorPath: mirrorPath,
		Now:        timezone.Now,
	}
	s.loadMirror()
	return s
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (s *Store) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	b.ID = uuid.NewString()
	b.Status = string(booking.InitialStatus())
	b.CreatedAt = now
	b.UpdatedAt = now

	s.bookings = append(s.bookings, *b)
	s.saveMirrorLocked()
	return nil
}

func (s *Store) GetAll(_ context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetByDate(_ context.Context, date string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) Update(_ context.Context, id string, upd store.BookingUpdate) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		applyUpdate(&s.bookings[i], upd)
		s.bookings[i].UpdatedAt = s.Now()

		b := s.bookings[i]
		s.saveMirrorLocked()
		return &b, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.saveMirrorLocked()
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetStats(_ context.Context, now time.Time) (store.BookingCounters, error) {
	s.mu.Lock()
	snapshot := make([]models.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	s.mu.Unlock()

	return stats.Counters(snapshot, now), nil
}

func applyUpdate(b *models.Booking, upd store.BookingUpdate) {
	if upd.CustomerName != nil {
		b.CustomerName = *upd.CustomerName
	}
	if upd.Email != nil {
		b.Email = *upd.Email
	}
	if upd.Phone != nil {
		b.Phone = *upd.Phone
	}
	if upd.ServiceID != nil {
		b.ServiceID = *upd.ServiceID
	}
	if upd.Date != nil {
		b.Date = *upd.Date
	}
	if upd.Time != nil {
		b.Time = *upd.Time
	}
	if upd.Notes != nil {
		b.Notes = *upd.Notes
	}
	if upd.Status != nil {
		b.Status = *upd.Status
	}
}

