package observability

import (
	"context"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the resolutions counter.
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

// Metrics instruments routing outcomes.
type Metrics struct {
	resolutions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics creates and registers the routing collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switchboard_resolutions_total",
				Help: "Total number of resolution attempts by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "switchboard_resolution_duration_seconds",
				Help: "Duration of resolution attempts",
			},
		),
	}
	reg.MustRegister(m.resolutions, m.duration)
	return m
}

// Resolutions exposes the outcome counter, mainly for tests.
func (m *Metrics) Resolutions() *prometheus.CounterVec {
	return m.resolutions
}

// Hooks adapts the metrics into routing hooks.
func (m *Metrics) Hooks() domain.RoutingHooks {
	return domain.RoutingHooks{
		OnRouted: func(_ context.Context, e *domain.RouteEvent) {
			outcome := OutcomeNoMatch
			switch {
			case e.Err != nil:
				outcome = OutcomeError
			case e.Matched():
				outcome = OutcomeMatched
			}
			m.resolutions.WithLabelValues(outcome).Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}
