// ABOUTME: Prometheus instrumentation for persistence gateway operations.
// ABOUTME: Counts outcomes and observes latency per operation and entity kind.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	gatewayOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "gateway",
		Name:      "operations_total",
		Help:      "Persistence gateway operations by operation, entity kind and outcome.",
	}, []string{"op", "kind", "outcome"})

	gatewayDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitness",
		Subsystem: "gateway",
		Name:      "operation_duration_seconds",
		Help:      "Latency of persistence gateway operations.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"op", "kind"})

	nameCheckFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "query",
		Name:      "name_exists_failures_total",
		Help:      "Username existence checks that failed and were reported as taken.",
	})
)

func init() {
	prometheus.MustRegister(gatewayOps, gatewayDuration, nameCheckFailures)
}

// ObserveGatewayOp records one gateway operation.
func ObserveGatewayOp(op, kind string, started time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	gatewayOps.WithLabelValues(op, kind, outcome).Inc()
	gatewayDuration.WithLabelValues(op, kind).Observe(time.Since(started).Seconds())
}

// RecordNameCheckFailure counts a fail-safe username check.
func RecordNameCheckFailure() {
	nameCheckFailures.Inc()
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
