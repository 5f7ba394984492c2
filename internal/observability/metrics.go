package observability

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry's prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests  *prometheus.CounterVec
	apiLatency   *prometheus.HistogramVec
	apiInflight  prometheus.Gauge
	writeLatency *prometheus.HistogramVec
	writeTotal   *prometheus.CounterVec
	conflicts    *prometheus.CounterVec
	retries      *prometheus.CounterVec
	reportRuns   *prometheus.CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init builds the process-wide metrics once. enabled=false returns nil.
func Init(enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics(prometheus.NewRegistry())
	})
	return instance
}

// NewMetrics registers every collector on reg. Tests pass a fresh registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroregistry",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agroregistry",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agroregistry",
			Name:      "http_requests_inflight",
			Help:      "HTTP requests currently being served.",
		}),
		writeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agroregistry",
			Name:      "write_duration_seconds",
			Help:      "Validated write latency by operation and status.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"op", "status"}),
		writeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroregistry",
			Name:      "writes_total",
			Help:      "Validated writes by operation and status.",
		}, []string{"op", "status"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroregistry",
			Name:      "write_conflicts_total",
			Help:      "Writes rejected by uniqueness or reference conflicts.",
		}, []string{"op"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroregistry",
			Name:      "write_retryable_total",
			Help:      "Writes that failed with a transient store error.",
		}, []string{"op"}),
		reportRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroregistry",
			Name:      "dashboard_reports_total",
			Help:      "Dashboard report computations by format and outcome.",
		}, []string{"format", "status"}),
	}
	reg.MustRegister(
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.writeLatency, m.writeTotal, m.conflicts, m.retries,
		m.reportRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) IncAPIInflight() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) DecAPIInflight() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveAPI(route, method string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	route = normalizeLabel(route, "unmatched")
	method = normalizeLabel(strings.ToUpper(method), "UNKNOWN")
	m.apiRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.apiLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveWriteOperation(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	op = normalizeLabel(op, "unknown")
	status = normalizeLabel(status, "unknown")
	m.writeTotal.WithLabelValues(op, status).Inc()
	m.writeLatency.WithLabelValues(op, status).Observe(dur.Seconds())
}

func (m *Metrics) IncWriteConflict(op string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(normalizeLabel(op, "unknown")).Inc()
}

func (m *Metrics) IncWriteRetry(op string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(normalizeLabel(op, "unknown")).Inc()
}

func (m *Metrics) IncReport(format, status string) {
	if m == nil {
		return
	}
	m.reportRuns.WithLabelValues(normalizeLabel(format, "json"), normalizeLabel(status, "unknown")).Inc()
}

func normalizeLabel(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
