package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private Prometheus registry and the service collectors.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	classifications *prometheus.CounterVec
	llmLatency      *prometheus.HistogramVec
	eventOps        *prometheus.CounterVec
}

// New registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classifications_total",
			Help: "Intent classifications by intent and source",
		}, []string{"intent", "source"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Latency of LLM provider calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"provider", "model", "outcome"}),
		eventOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "event_operations_total",
			Help: "Event store operations by kind and outcome",
		}, []string{"op", "outcome"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.classifications,
		m.llmLatency,
		m.eventOps,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

// IncClassification counts one classifier result.
func (m *Metrics) IncClassification(intent, source string) {
	m.classifications.WithLabelValues(intent, source).Inc()
}

// ObserveLLMCall records one provider attempt.
func (m *Metrics) ObserveLLMCall(provider, model string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.llmLatency.WithLabelValues(provider, model, outcome).Observe(elapsed.Seconds())
}

// IncEventOp counts one event store operation.
func (m *Metrics) IncEventOp(op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.eventOps.WithLabelValues(op, outcome).Inc()
}
