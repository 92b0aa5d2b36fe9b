package memory

import (
	"context"
	"fmt"
	"testing"

	"automaxbot/internal/model"
)

func TestMemoryStoreAppendAndHistory(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultHistoryLimit)

	msgs := []model.ChatMessage{
		{Role: model.RoleUser, Content: "hola"},
		{Role: model.RoleAssistant, Content: "¡Hola! ¿En qué puedo ayudarte?"},
	}
	for _, m := range msgs {
		if err := store.Append(ctx, "user-1", m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := store.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].Content != "hola" || got[1].Role != model.RoleAssistant {
		t.Errorf("history out of order: %+v", got)
	}
}

func TestMemoryStoreTrimsToWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(20)

	for i := 0; i < 25; i++ {
		msg := model.ChatMessage{Role: model.RoleUser, Content: fmt.Sprintf("mensaje %d", i)}
		if err := store.Append(ctx, "user-1", msg); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got, err := store.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 19 {
		t.Fatalf("expected 19 messages after trimming, got %d", len(got))
	}
	if got[0].Content != "mensaje 6" {
		t.Errorf("oldest surviving message = %q, want %q", got[0].Content, "mensaje 6")
	}
	if got[len(got)-1].Content != "mensaje 24" {
		t.Errorf("newest message = %q, want %q", got[len(got)-1].Content, "mensaje 24")
	}
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultHistoryLimit)

	store.Append(ctx, "user-1", model.ChatMessage{Role: model.RoleUser, Content: "uno"})
	store.Append(ctx, "user-2", model.ChatMessage{Role: model.RoleUser, Content: "dos"})

	got, _ := store.History(ctx, "user-2")
	if len(got) != 1 || got[0].Content != "dos" {
		t.Errorf("user-2 history = %+v, want only their own message", got)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultHistoryLimit)

	store.Append(ctx, "user-1", model.ChatMessage{Role: model.RoleUser, Content: "hola"})
	if err := store.Reset(ctx, "user-1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, err := store.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history after reset, got %d messages", len(got))
	}
}

func TestMemoryStoreUnknownUser(t *testing.T) {
	store := NewMemoryStore(DefaultHistoryLimit)
	got, err := store.History(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history for unseen user, got %d", len(got))
	}
}
