// Package metrics holds the Prometheus collectors exported by the planner.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the planner collectors and the Prometheus registry they
// are registered with.
type Registry struct {
	reg *prometheus.Registry

	WorkflowTransitions *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	JobRuns             *prometheus.CounterVec
	AssistantCalls      *prometheus.CounterVec
	BreakerState        *prometheus.GaugeVec
	OpenSessions        prometheus.Gauge
}

// NewRegistry creates the collectors on a fresh registry, together with
// the standard Go and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		WorkflowTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_workflow_transitions_total",
				Help: "Modification workflow state transitions by from/to state",
			},
			[]string{"from", "to"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			},
			[]string{"method", "route", "status"},
		),

		JobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_job_runs_total",
				Help: "Periodic job executions by job and result",
			},
			[]string{"job", "result"},
		),

		AssistantCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_assistant_calls_total",
				Help: "Calls to the external assistant by operation and result",
			},
			[]string{"op", "result"},
		),

		BreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "planner_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),

		OpenSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "planner_modification_sessions",
				Help: "Number of modification sessions held in memory",
			},
		),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.WorkflowTransitions,
		r.HTTPDuration,
		r.JobRuns,
		r.AssistantCalls,
		r.BreakerState,
		r.OpenSessions,
	)

	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests and tooling.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// RecordTransition counts one workflow state change.
func (r *Registry) RecordTransition(from, to string) {
	r.WorkflowTransitions.WithLabelValues(from, to).Inc()
}

// ObserveHTTP records the duration of a served request.
func (r *Registry) ObserveHTTP(method, route string, status int, d time.Duration) {
	r.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordJob counts one job run.
func (r *Registry) RecordJob(job string, err error) {
	r.JobRuns.WithLabelValues(job, result(err)).Inc()
}

// RecordAssistantCall counts one assistant call.
func (r *Registry) RecordAssistantCall(op string, err error) {
	r.AssistantCalls.WithLabelValues(op, result(err)).Inc()
}

// SetBreakerState publishes a breaker state as 0, 1 or 2.
func (r *Registry) SetBreakerState(name string, state int) {
	r.BreakerState.WithLabelValues(name).Set(float64(state))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
