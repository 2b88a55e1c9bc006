package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the instrumentation for the dialogue runtime. All counters
// live in a private registry so embedding applications keep control of the
// default one.
type Metrics struct {
	registry *prometheus.Registry

	Turns          prometheus.Counter
	Transitions    *prometheus.CounterVec
	Fallbacks      *prometheus.CounterVec
	GlobalCommands *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

// NewMetrics creates and registers the dialogue metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		Turns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sahaj_turns_total",
			Help: "Total dialogue turns processed.",
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sahaj_transitions_total",
			Help: "State transitions taken, by source and target state.",
		}, []string{"from", "to"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sahaj_fallbacks_total",
			Help: "Turns answered by a fallback re-prompt, by state.",
		}, []string{"state"}),
		GlobalCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sahaj_global_commands_total",
			Help: "Global command invocations, by command.",
		}, []string{"command"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sahaj_active_sessions",
			Help: "Sessions currently live in the store.",
		}),
	}

	reg.MustRegister(m.Turns, m.Transitions, m.Fallbacks, m.GlobalCommands, m.ActiveSessions)
	return m
}

// Handler returns the HTTP handler exposing the registry, for mounting at
// /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
