package memory

import (
	"sync"

	"automaxbot/internal/model"
)

// StateStore tracks per-user lifecycle state. Entries are created lazily on
// first read and removed only by Reset.
type StateStore struct {
	mu     sync.Mutex
	states map[string]model.UserState
}

func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]model.UserState)}
}

func (s *StateStore) Get(userID string) model.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[userID]
	if !ok {
		st = model.NewUserState()
		s.states[userID] = st
	}
	return st
}

// Update applies fn to the user's state under the lock.
func (s *StateStore) Update(userID string, fn func(*model.UserState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[userID]
	if !ok {
		st = model.NewUserState()
	}
	fn(&st)
	s.states[userID] = st
}

func (s *StateStore) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

func (s *StateStore) ActiveUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
