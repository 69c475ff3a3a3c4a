package memory

import (
	"context"
	"sync"

	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/store"
)

// ReviewStore holds the imported Google reviews. Create/delete are out of
// scope; visibility is the only mutable field.
type ReviewStore struct {
	mu      sync.Mutex
	reviews []models.Review
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{reviews: store.SeedReviews()}
}

func (s *ReviewStore) GetAll(_ context.Context) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *ReviewStore) SetVisibility(_ context.Context, id string, visible bool) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].IsVisible = visible
			r := s.reviews[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}
