package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// WhatsApp Business API
	WhatsAppToken string
	PhoneNumberID string
	VerifyToken   string

	// Completion model
	OpenAIKey  string
	LLMTimeout time.Duration

	// Conversation storage
	HistoryBackend string // "memory", "redis" or "postgres"
	HistoryLimit   int
	RedisURL       string
	DatabaseURL    string

	// Behavior variants
	IntentStrategy   string // "keyword" or "llm"
	TranslateEnabled bool

	ListenAddr  string
	MetricsPort string
}

func Load() *Config {
	// Tries the project root first, then the working directory.
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		WhatsAppToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		VerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", "automax_webhook_2025"),

		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
		LLMTimeout: getDurationEnv("LLM_TIMEOUT", 30*time.Second),

		HistoryBackend: getEnv("HISTORY_BACKEND", "memory"),
		HistoryLimit:   getIntEnv("HISTORY_LIMIT", 20),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		IntentStrategy:   getEnv("INTENT_STRATEGY", "keyword"),
		TranslateEnabled: getBoolEnv("TRANSLATE_ENABLED", false),

		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getIntEnv(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getBoolEnv(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func getDurationEnv(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}
