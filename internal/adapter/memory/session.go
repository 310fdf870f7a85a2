// Package memory keeps review sessions in process memory. Sessions are
// cursors over a snapshot and are not persisted across restarts.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tango-backend/internal/domain"
)

// SessionStore holds at most one review session per user.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.ReviewSession
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*domain.ReviewSession)}
}

// Get returns a copy of the user's active session.
func (s *SessionStore) Get(_ context.Context, userID uuid.UUID) (*domain.ReviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("session of user %s: %w", userID, domain.ErrNotFound)
	}
	return session.Clone(), nil
}

// Save stores a copy of session and bumps its Version. Saving a session with
// a new ID replaces the user's previous one. Saving a stale copy of the
// current session fails with domain.ErrConflict.
func (s *SessionStore) Save(_ context.Context, session *domain.ReviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, ok := s.sessions[session.UserID]; ok &&
		stored.ID == session.ID && stored.Version != session.Version {
		return fmt.Errorf("session %s: %w", session.ID, domain.ErrConflict)
	}

	session.Version++
	s.sessions[session.UserID] = session.Clone()
	return nil
}

// Delete discards the user's session.
func (s *SessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return fmt.Errorf("session of user %s: %w", userID, domain.ErrNotFound)
	}
	delete(s.sessions, userID)
	return nil
}
