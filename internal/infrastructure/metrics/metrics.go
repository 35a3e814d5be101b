// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Operations counts mutating negotiation operations by name and outcome
	// (ok, duplicate, or the error code returned to the caller).
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "negotiation",
		Name:      "operations_total",
		Help:      "Negotiation operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	// StatusTransitions counts saved status changes by target status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "negotiation",
		Name:      "status_transitions_total",
		Help:      "Persisted status transitions by target status.",
	}, []string{"status"})

	SaveConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "negotiation",
		Name:      "save_conflicts_total",
		Help:      "Optimistic concurrency conflicts seen while saving.",
	})

	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "negotiation",
		Name:      "publish_failures_total",
		Help:      "Realtime publishes that failed and were dropped.",
	})

	GovernancePayments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "negotiation",
		Name:      "governance_payments_total",
		Help:      "Governance fee charges by provider outcome.",
	}, []string{"status"})

	RealtimeSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "negotiation",
		Name:      "realtime_subscribers",
		Help:      "Open realtime connections.",
	})
)
