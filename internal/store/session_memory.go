package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
)

type memorySession struct {
	session  models.Session
	deadline time.Time
}

// memorySessionStore keeps sessions in process memory. Entries live for ttl
// after their last Save; [memorySessionStore.Sweep] removes the stale ones.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore constructs an in-process [SessionStore].
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return newMemorySessionStore(ttl, time.Now)
}

func newMemorySessionStore(ttl time.Duration, now func() time.Time) *memorySessionStore {
	return &memorySessionStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      now,
	}
}

func (s *memorySessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = memorySession{session: session, deadline: s.now().Add(s.ttl)}
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	if !s.now().Before(entry.deadline) {
		delete(s.sessions, id)
		return models.Session{}, ErrNotFound
	}
	return entry.session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.deadline) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}
