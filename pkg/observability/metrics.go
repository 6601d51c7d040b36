package observability

import (
	"context"

	"github.com/aretw0/switchyard/pkg/broker"
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of both engines.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejected    *prometheus.CounterVec
	Terminated  prometheus.Counter
	Broadcasts  prometheus.Counter
	Visited     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switchyard_transitions_total",
				Help: "Total number of applied transitions",
			},
			[]string{"from", "to", "trigger"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switchyard_rejected_transitions_total",
				Help: "Total number of triggers with no rule for the current state",
			},
			[]string{"state", "trigger"},
		),
		Terminated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "switchyard_terminated_sessions_total",
			Help: "Total number of sessions that reached a terminal state",
		}),
		Broadcasts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "switchyard_broadcasts_total",
			Help: "Total number of broadcast queries",
		}),
		Visited: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "switchyard_broadcast_subscribers",
			Help:    "Subscribers visited per broadcast",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.Transitions, m.Rejected, m.Terminated, m.Broadcasts, m.Visited} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks recording transition metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(string(e.From), string(e.To), string(e.Trigger)).Inc()
		},
		OnRejected: func(_ context.Context, e *domain.TransitionEvent) {
			m.Rejected.WithLabelValues(string(e.From), string(e.Trigger)).Inc()
		},
		OnTerminal: func(context.Context, *domain.TransitionEvent) {
			m.Terminated.Inc()
		},
	}
}

// BrokerOption returns a registry option recording broadcast metrics.
func (m *Metrics) BrokerOption() broker.Option {
	return broker.WithBroadcastObserver(func(visited int) {
		m.Broadcasts.Inc()
		m.Visited.Observe(float64(visited))
	})
}
