package memory

import (
	"context"
	"sync"

	"automaxbot/internal/model"
)

// MemoryStore keeps conversation logs in a process-local map. Each user's
// log is isolated; the mutex serializes mutation so two deliveries for the
// same user can never interleave an append.
type MemoryStore struct {
	mu    sync.Mutex
	limit int
	logs  map[string][]model.ChatMessage
}

func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &MemoryStore{
		limit: limit,
		logs:  make(map[string][]model.ChatMessage),
	}
}

func (s *MemoryStore) Append(_ context.Context, userID string, msg model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := append(s.logs[userID], msg)
	s.logs[userID] = trimWindow(log, s.limit)
	return nil
}

func (s *MemoryStore) History(_ context.Context, userID string) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.logs[userID]
	out := make([]model.ChatMessage, len(log))
	copy(out, log)
	return out, nil
}

func (s *MemoryStore) Reset(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, userID)
	return nil
}

// ActiveUsers reports how many users currently hold a conversation log.
func (s *MemoryStore) ActiveUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}
