package synchronizer

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-travel-journal/models"
)

// ProfileUpdate is what a ProfileState subscriber receives. Refetch is set
// by Refresh: the value is gone and the subscriber should load it again.
type ProfileUpdate struct {
	Profile *models.Profile
	Refetch bool
}

// ProfileState holds the profile shared by all views of one session.
// The zero value is not usable; get states from a ProfileStore.
type ProfileState struct {
	mu      sync.RWMutex
	profile *models.Profile
	subs    map[uint64]chan ProfileUpdate
	nextID  uint64
}

func newProfileState() *ProfileState {
	return &ProfileState{subs: make(map[uint64]chan ProfileUpdate)}
}

// Get returns a copy of the current profile, or nil while absent.
func (s *ProfileState) Get() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.profile)
}

// Update replaces the shared value and notifies subscribers. When Update
// returns, Get already yields the new value.
func (s *ProfileState) Update(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = cloneProfile(p)
	s.notify(ProfileUpdate{Profile: cloneProfile(p)})
}

// Refresh clears the value and tells subscribers to fetch it again.
func (s *ProfileState) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.notify(ProfileUpdate{Refetch: true})
}

// Subscribe returns a channel of updates and the function that cancels the
// subscription. A subscriber that falls behind only keeps the latest update.
func (s *ProfileState) Subscribe() (<-chan ProfileUpdate, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	ch := make(chan ProfileUpdate, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// notify must be called with the write lock held.
func (s *ProfileState) notify(u ProfileUpdate) {
	for _, ch := range s.subs {
		// keep only the newest value
		select {
		case <-ch:
		default:
		}
		ch <- u
	}
}

func cloneProfile(p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// ProfileStore is the registry of per-session profile states.
type ProfileStore struct {
	mu     sync.Mutex
	states map[string]*ProfileState
}

// NewProfileStore returns an empty store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{states: make(map[string]*ProfileState)}
}

// State returns the state of sessionID, creating an absent one on first use.
func (s *ProfileStore) State(sessionID string) *ProfileState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		st = newProfileState()
		s.states[sessionID] = st
	}
	return st
}

// Drop forgets the state of sessionID, e.g. on sign out.
func (s *ProfileStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

// Len returns the number of tracked sessions.
func (s *ProfileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

type profileStateCtxKey struct{}

// WithProfileState returns a copy of ctx carrying st.
func WithProfileState(ctx context.Context, st *ProfileState) context.Context {
	return context.WithValue(ctx, profileStateCtxKey{}, st)
}

// ProfileStateFrom returns the state attached by WithProfileState.
func ProfileStateFrom(ctx context.Context) (*ProfileState, bool) {
	st, ok := ctx.Value(profileStateCtxKey{}).(*ProfileState)
	return st, ok && st != nil
}
