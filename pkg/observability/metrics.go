package observability

import (
	"net/http"
	"time"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for transductions.
const (
	OutcomeOK       = "ok"
	OutcomeNoResult = "no_result"
	OutcomeError    = "error"
)

// Metrics groups the engine collectors.
type Metrics struct {
	registry      *prometheus.Registry
	transductions *prometheus.CounterVec
	outputs       *prometheus.HistogramVec
	duration      *prometheus.HistogramVec
	cache         *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transductions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transducer_transductions_total",
				Help: "Total number of transductions",
			},
			[]string{"table", "direction", "outcome"},
		),
		outputs: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transducer_outputs_per_input",
				Help:    "Number of outputs produced per input string",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 64},
			},
			[]string{"direction"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "transducer_duration_seconds",
				Help: "Duration of transductions",
			},
			[]string{"direction"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transducer_cache_lookups_total",
				Help: "Result cache lookups by result",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.transductions, m.outputs, m.duration, m.cache)
	return m
}

// ObserveTransduction records one transduction.
func (m *Metrics) ObserveTransduction(table string, dir domain.Direction, outputs int, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	switch {
	case err != nil:
		outcome = OutcomeError
	case outputs == 0:
		outcome = OutcomeNoResult
	}
	m.transductions.WithLabelValues(table, string(dir), outcome).Inc()
	if err == nil {
		m.outputs.WithLabelValues(string(dir)).Observe(float64(outputs))
	}
	m.duration.WithLabelValues(string(dir)).Observe(elapsed.Seconds())
}

// ObserveCache records a cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cache.WithLabelValues(result).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
