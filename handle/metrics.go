package handle

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts registry activity. A nil *Metrics records nothing.
type Metrics struct {
	constructed *prometheus.CounterVec
	released    *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	live        *prometheus.GaugeVec
}

// NewMetrics creates the registry collectors and registers them on reg.
// It panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		constructed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ltl_formulas_constructed_total",
				Help: "Formulas handed out, by label type and constructing operation.",
			},
			[]string{"labels", "op"},
		),
		released: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ltl_handles_released_total",
				Help: "Handles released.",
			},
			[]string{"labels"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ltl_handles_rejected_total",
				Help: "Operations refused because of a released or unknown handle.",
			},
			[]string{"labels", "op", "reason"},
		),
		live: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ltl_handles_live",
				Help: "Handles issued and not yet released.",
			},
			[]string{"labels"},
		),
	}
	reg.MustRegister(m.constructed, m.released, m.rejected, m.live)
	return m
}

func (m *Metrics) observeConstructed(labels, op string) {
	if m == nil {
		return
	}
	m.constructed.WithLabelValues(labels, op).Inc()
	m.live.WithLabelValues(labels).Inc()
}

func (m *Metrics) observeReleased(labels string) {
	if m == nil {
		return
	}
	m.released.WithLabelValues(labels).Inc()
	m.live.WithLabelValues(labels).Dec()
}

func (m *Metrics) observeRejected(labels, op string, err error) {
	if m == nil {
		return
	}
	reason := "unknown"
	if errors.Is(err, ErrReleased) {
		reason = "released"
	}
	m.rejected.WithLabelValues(labels, op, reason).Inc()
}
