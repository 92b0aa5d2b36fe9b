// Terminal chat client for local development: the same agent as the
// WhatsApp binary, minus the transport.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"automaxbot/internal/agent"
	"automaxbot/internal/config"
	"automaxbot/internal/dealership"
	"automaxbot/internal/intent"
	"automaxbot/internal/llm"
	"automaxbot/internal/memory"
	"automaxbot/internal/model"
	"automaxbot/internal/translate"
)

const terminalUser = "terminal"

func main() {
	cfg := config.Load()

	store := memory.NewMemoryStore(cfg.HistoryLimit)
	states := memory.NewStateStore()
	completer := llm.NewOpenAI(cfg.OpenAIKey, cfg.LLMTimeout)

	var classifier intent.Classifier
	if cfg.IntentStrategy == "llm" {
		classifier = intent.NewDelegatedClassifier(completer)
	} else {
		classifier = intent.NewKeywordClassifier()
	}

	ag := agent.New(
		store,
		states,
		classifier,
		completer,
		translate.New(completer, cfg.TranslateEnabled),
		dealership.NewAppointmentBook(),
	)

	fmt.Println("AutoMax - chat de prueba (escribe 'salir' para terminar)")
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()
	for {
		fmt.Print("💬 Tú: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		switch strings.ToLower(text) {
		case "salir", "exit", "quit":
			fmt.Println("¡Hasta pronto! 👋")
			return
		}
		reply := ag.Process(ctx, model.InboundMessage{
			UserID: terminalUser,
			Kind:   model.KindText,
			Text:   text,
		})
		fmt.Printf("🤖 AutoMax: %s\n\n", reply.Text)
	}
}
