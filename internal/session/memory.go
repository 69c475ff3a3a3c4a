package session

import (
	"context"
	"sync"
	"time"
)

// MemoryTokenStore is the single-process default. Expired tokens are
// evicted lazily on check.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time // token -> absolute expiry

	// Now is swappable in tests.
	Now func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]time.Time),
		Now:    time.Now,
	}
}

func (s *MemoryTokenStore) Save(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = s.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Valid(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	if s.Now().After(expiresAt) {
		delete(s.tokens, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}
