package intent

import (
	"context"
	"errors"
	"testing"

	"automaxbot/internal/llm"
	"automaxbot/internal/model"
)

type fakeCompleter struct {
	out string
	err error
}

func (f *fakeCompleter) Complete(_ context.Context, _ []model.ChatMessage, _ llm.Options) (string, error) {
	return f.out, f.err
}

func TestDelegatedClassifierLabels(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Intent
	}{
		{"clean label", "SEARCH_INVENTORY", SearchInventory},
		{"lowercase label", "vehicle_details", VehicleDetails},
		{"padded label", "  SCHEDULE_APPOINTMENT.\n", ScheduleAppointment},
		{"company info", "COMPANY_INFO", CompanyInfo},
		{"unknown label", "BUY_A_BOAT", GeneralChat},
		{"prose answer", "Creo que el usuario busca un coche", GeneralChat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDelegatedClassifier(&fakeCompleter{out: tt.out})
			got := c.Classify(context.Background(), nil, "da igual")
			if got != tt.want {
				t.Errorf("Classify with model output %q = %s, want %s", tt.out, got, tt.want)
			}
		})
	}
}

func TestDelegatedClassifierErrorDefaultsToChat(t *testing.T) {
	c := NewDelegatedClassifier(&fakeCompleter{err: errors.New("boom")})
	if got := c.Classify(context.Background(), nil, "hola"); got != GeneralChat {
		t.Errorf("Classify on error = %s, want %s", got, GeneralChat)
	}
}

func TestDelegatedClassifierIncludesHistory(t *testing.T) {
	var captured []model.ChatMessage
	c := NewDelegatedClassifier(completerFunc(func(_ context.Context, msgs []model.ChatMessage, _ llm.Options) (string, error) {
		captured = msgs
		return "GENERAL_CHAT", nil
	}))
	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "busco un SUV"},
		{Role: model.RoleAssistant, Content: "Tenemos varios"},
	}
	c.Classify(context.Background(), history, "¿y el azul?")
	if len(captured) != 3 {
		t.Fatalf("expected system prompt, history summary and message, got %d messages", len(captured))
	}
	if captured[len(captured)-1].Content != "¿y el azul?" {
		t.Errorf("last message = %q", captured[len(captured)-1].Content)
	}
}

type completerFunc func(context.Context, []model.ChatMessage, llm.Options) (string, error)

func (f completerFunc) Complete(ctx context.Context, msgs []model.ChatMessage, opts llm.Options) (string, error) {
	return f(ctx, msgs, opts)
}
