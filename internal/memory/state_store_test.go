package memory

import (
	"testing"

	"automaxbot/internal/model"
)

func TestStateStoreLazyDefault(t *testing.T) {
	store := NewStateStore()
	state := store.Get("user-1")
	if state.Status != model.StatusNew {
		t.Errorf("fresh state status = %q, want %q", state.Status, model.StatusNew)
	}
}

func TestStateStoreUpdate(t *testing.T) {
	store := NewStateStore()
	store.Update("user-1", func(s *model.UserState) {
		s.Status = model.StatusWelcomed
	})
	if got := store.Get("user-1").Status; got != model.StatusWelcomed {
		t.Errorf("status after update = %q, want %q", got, model.StatusWelcomed)
	}
	if store.ActiveUsers() != 1 {
		t.Errorf("ActiveUsers = %d, want 1", store.ActiveUsers())
	}
}

func TestStateStoreReset(t *testing.T) {
	store := NewStateStore()
	store.Update("user-1", func(s *model.UserState) { s.Status = model.StatusActive })
	store.Reset("user-1")
	if got := store.Get("user-1").Status; got != model.StatusNew {
		t.Errorf("status after reset = %q, want %q", got, model.StatusNew)
	}
}
