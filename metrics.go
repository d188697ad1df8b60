package libemit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by an Emitter. One Metrics value can be shared by several
// emitters.
type Metrics struct {
	// Dispatches counts Dispatch and DispatchWith calls by event. Events that were never bound are not counted,
	// so label values stay within the set of names passed to On.
	Dispatches *prometheus.CounterVec
	// Invocations counts handler invocations by event.
	Invocations *prometheus.CounterVec
	// Failures counts handlers that returned an error, by event.
	Failures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Dispatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "emitter_dispatches_total",
				Help:      "Event dispatches by event name",
			},
			[]string{"event"},
		),
		Invocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "emitter_handler_invocations_total",
				Help:      "Handler invocations by event name",
			},
			[]string{"event"},
		),
		Failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "emitter_handler_failures_total",
				Help:      "Handler failures by event name",
			},
			[]string{"event"},
		),
	}
}

func (m *Metrics) dispatched(event string) {
	if m == nil {
		return
	}
	m.Dispatches.WithLabelValues(event).Inc()
}

func (m *Metrics) invoked(event string) {
	if m == nil {
		return
	}
	m.Invocations.WithLabelValues(event).Inc()
}

func (m *Metrics) failed(event string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(event).Inc()
}
