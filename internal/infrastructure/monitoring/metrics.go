package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BusinessMetrics struct {
	DecisionsTotal *prometheus.CounterVec
	CacheLookups   *prometheus.CounterVec
	PublishErrors  prometheus.Counter
}

var Business = BusinessMetrics{
	DecisionsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_engine_decisions_total",
			Help: "Total number of loan decisions by outcome and reason.",
		},
		[]string{"decision", "reason"},
	),
	CacheLookups: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_engine_cache_lookups_total",
			Help: "Offer cache lookups by result.",
		},
		[]string{"result"},
	),
	PublishErrors: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "decision_engine_event_publish_errors_total",
			Help: "Total number of decision events that could not be published.",
		},
	),
}

func RecordDecision(decision, reason string) {
	Business.DecisionsTotal.WithLabelValues(decision, reason).Inc()
}

// RecordCacheLookup takes "hit", "miss" or "error".
func RecordCacheLookup(result string) {
	Business.CacheLookups.WithLabelValues(result).Inc()
}

func RecordPublishError() {
	Business.PublishErrors.Inc()
}
