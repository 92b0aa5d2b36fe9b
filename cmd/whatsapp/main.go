package main

import (
	"context"
	"log"
	"net/http"

	redis "github.com/redis/go-redis/v9"

	"automaxbot/internal/agent"
	"automaxbot/internal/config"
	"automaxbot/internal/dealership"
	"automaxbot/internal/intent"
	"automaxbot/internal/llm"
	"automaxbot/internal/memory"
	"automaxbot/internal/observability"
	"automaxbot/internal/translate"
	"automaxbot/internal/whatsapp"
)

func main() {
	cfg := config.Load()

	observability.Start(cfg.MetricsPort)

	ctx := context.Background()

	var store memory.Store
	switch cfg.HistoryBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("[Main] redis unreachable at %s: %v", cfg.RedisURL, err)
		}
		store = memory.NewRedisStore(client, cfg.HistoryLimit)
		log.Printf("[Main] conversation history on redis (%s)", cfg.RedisURL)
	case "postgres":
		pg, err := memory.NewPostgresStore(ctx, cfg.DatabaseURL, cfg.HistoryLimit)
		if err != nil {
			log.Fatalf("[Main] postgres store: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Printf("[Main] conversation history on postgres")
	default:
		store = memory.NewMemoryStore(cfg.HistoryLimit)
		log.Printf("[Main] conversation history in memory")
	}

	states := memory.NewStateStore()
	completer := llm.NewOpenAI(cfg.OpenAIKey, cfg.LLMTimeout)

	var classifier intent.Classifier
	if cfg.IntentStrategy == "llm" {
		classifier = intent.NewDelegatedClassifier(completer)
		log.Printf("[Main] intent classification delegated to the model")
	} else {
		classifier = intent.NewKeywordClassifier()
	}

	translator := translate.New(completer, cfg.TranslateEnabled)
	book := dealership.NewAppointmentBook()

	ag := agent.New(store, states, classifier, completer, translator, book)

	if cfg.WhatsAppToken == "" || cfg.PhoneNumberID == "" {
		log.Fatal("[Main] WHATSAPP_ACCESS_TOKEN and WHATSAPP_PHONE_NUMBER_ID are required")
	}
	sender := whatsapp.NewSender(cfg.WhatsAppToken, cfg.PhoneNumberID)
	hook := whatsapp.NewWebhook(cfg.VerifyToken, ag, sender, states)

	mux := http.NewServeMux()
	mux.HandleFunc("/whatsapp", hook.Handler())
	mux.HandleFunc("/status", hook.StatusHandler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AutoMax WhatsApp bot"))
	})

	log.Printf("[Main] listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("[Main] server stopped: %v", err)
	}
}
