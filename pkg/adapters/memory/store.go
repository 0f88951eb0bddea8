// Package memory provides in-memory implementations of the session store
// and the catalog source. Suitable for tests and single-process deployments.
package memory

import (
	"context"
	"sync"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]*domain.Session
}

// NewStore creates a new in-memory session store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Session),
	}
}

// Save persists a copy of the session, isolating the caller's value.
func (s *Store) Save(ctx context.Context, sess *domain.Session) error {
	copied := sess.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[copied.UserID] = copied
	return nil
}

// Load retrieves a copy so callers cannot mutate stored state by pointer.
func (s *Store) Load(ctx context.Context, userID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Delete removes the session. Missing sessions are not an error.
func (s *Store) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

// List returns the user IDs of all stored sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userIDs := make([]string, 0, len(s.data))
	for id := range s.data {
		userIDs = append(userIDs, id)
	}
	return userIDs, nil
}
