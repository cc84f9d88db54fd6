// Package metrics exposes prometheus collectors for the command pipeline.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fridge"

type Metrics struct {
	registry  *prometheus.Registry
	commands  *prometheus.CounterVec
	actions   *prometheus.CounterVec
	queries   *prometheus.CounterVec
	interpret prometheus.Histogram
}

// New builds a registry with the pipeline collectors plus the Go runtime and process ones.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "voice",
			Name:      "commands_total",
			Help:      "Processed commands by result.",
		}, []string{"result"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "voice",
			Name:      "actions_total",
			Help:      "Executed actions by type and status.",
		}, []string{"type", "status"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "voice",
			Name:      "queries_total",
			Help:      "Processed queries by whether anything was found.",
		}, []string{"found"}),
		interpret: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "voice",
			Name:      "interpret_duration_seconds",
			Help:      "Latency of the language model interpretation call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}

	m.registry.MustRegister(
		m.commands,
		m.actions,
		m.queries,
		m.interpret,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveCommand(result string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAction(actionType, status string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(actionType, status).Inc()
}

func (m *Metrics) ObserveQuery(found bool) {
	if m == nil {
		return
	}
	label := "false"
	if found {
		label = "true"
	}
	m.queries.WithLabelValues(label).Inc()
}

func (m *Metrics) ObserveInterpret(d time.Duration) {
	if m == nil {
		return
	}
	m.interpret.Observe(d.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
