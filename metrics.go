package orrery

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects propagation statistics. A nil *Metrics records nothing.
type Metrics struct {
	propagations *prometheus.CounterVec
	iterations   prometheus.Histogram
}

// NewMetrics creates the propagation collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		propagations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "orrery",
				Name:      "propagations_total",
				Help:      "Orbit generation requests by body and outcome (computed, cached or failed)",
			},
			[]string{"body", "result"},
		),
		iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "orrery",
				Name:      "kepler_iterations",
				Help:      "Newton iterations needed to solve Kepler's equation for one sample",
				Buckets:   prometheus.LinearBuckets(1, 1, 10),
			},
		),
	}
	for _, c := range []prometheus.Collector{m.propagations, m.iterations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordPropagation(body, result string) {
	if m == nil {
		return
	}
	m.propagations.WithLabelValues(body, result).Inc()
}

func (m *Metrics) recordIterations(iterations []int) {
	if m == nil {
		return
	}
	for _, it := range iterations {
		m.iterations.Observe(float64(it))
	}
}
