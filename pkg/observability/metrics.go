// Package observability wires engine lifecycle hooks to Prometheus.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Metrics holds the assistant's Prometheus collectors.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejections  *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "packlist",
				Name:      "transitions_total",
				Help:      "Successful session transitions by event and resulting phase.",
			},
			[]string{"event", "to"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "packlist",
				Name:      "rejections_total",
				Help:      "Rejected events by event and error kind.",
			},
			[]string{"event", "kind"},
		),
	}
	reg.MustRegister(m.Transitions, m.Rejections)
	return m
}

// Hooks returns lifecycle hooks feeding these collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, ev *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(string(ev.Event), string(ev.To)).Inc()
		},
		OnReject: func(ctx context.Context, ev *domain.RejectEvent) {
			m.Rejections.WithLabelValues(string(ev.Event), string(ev.Kind)).Inc()
		},
	}
}

// NewSessionsGauge registers a gauge reporting the current number of
// active sessions via the given count function.
func NewSessionsGauge(reg prometheus.Registerer, count func() float64) prometheus.GaugeFunc {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "packlist",
		Name:      "active_sessions",
		Help:      "Number of sessions currently in the store.",
	}, count)
	reg.MustRegister(g)
	return g
}
