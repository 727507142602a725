package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rashi"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   []float64{.005, .025, .1, .25, .5, 1, 2.5, 5, 10, 25},
	}, []string{"method", "route"})

	breakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "circuit_state",
		Help:      "Circuit breaker state per downstream: 0 closed, 1 open, 2 half-open.",
	}, []string{"service"})

	computeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "compute",
		Name:      "outcomes_total",
		Help:      "Rashi computations by outcome.",
	}, []string{"outcome"})
)

func observeHTTP(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}

	httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveBreaker records the circuit state of a downstream service.
func ObserveBreaker(service string, state int) {
	breakerState.WithLabelValues(service).Set(float64(state))
}

// ObserveCompute counts one rashi computation outcome.
func ObserveCompute(outcome string) {
	computeOutcomes.WithLabelValues(outcome).Inc()
}
