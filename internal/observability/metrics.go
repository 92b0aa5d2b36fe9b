package observability

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automax_messages_total",
			Help: "Mensajes procesados por intención",
		},
		[]string{"intent"},
	)

	CompletionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "automax_completion_latency_seconds",
			Help:    "Latencia de las llamadas al modelo de completado",
			Buckets: []float64{0.25, 0.5, 1, 2, 3, 5, 8, 10, 15, 20, 30},
		},
		[]string{"status"},
	)

	TranslationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "automax_translation_failures_total",
			Help: "Traducciones descartadas por salida ilegible o demasiado corta",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(MessagesTotal, CompletionLatency, TranslationFailures)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("[Metrics] servidor detenido: %v", err)
		}
	}()
}
