// Package metrics registers the service's Prometheus collectors. Exposed on
// /metrics via promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	movementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spareparts_movements_total",
		Help: "Stock movements applied, by direction.",
	}, []string{"direction"})

	movementFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spareparts_movement_failures_total",
		Help: "Rejected or failed stock movements, by reason.",
	}, []string{"reason"})

	reportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spareparts_report_build_seconds",
		Help:    "Transaction report build duration.",
		Buckets: prometheus.DefBuckets,
	})
)

// MovementApplied counts a successfully applied movement.
func MovementApplied(direction string) {
	movementsTotal.WithLabelValues(direction).Inc()
}

// MovementFailed counts a rejected or failed movement.
func MovementFailed(reason string) {
	movementFailuresTotal.WithLabelValues(reason).Inc()
}

// ReportBuilt records how long a report build took.
func ReportBuilt(d time.Duration) {
	reportDuration.Observe(d.Seconds())
}
