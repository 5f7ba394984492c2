package observability

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsWriteOperation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveWriteOperation("city.create", "success", 3*time.Millisecond)
	m.ObserveWriteOperation("city.create", "duplicate_name", time.Millisecond)
	m.IncWriteConflict("city.create")

	if got := testutil.ToFloat64(m.writeTotal.WithLabelValues("city.create", "success")); got != 1 {
		t.Fatalf("writes success: want=1 got=%v", got)
	}
	if got := testutil.ToFloat64(m.conflicts.WithLabelValues("city.create")); got != 1 {
		t.Fatalf("conflicts: want=1 got=%v", got)
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveWriteOperation("x", "y", time.Second)
	m.IncWriteConflict("x")
	m.IncWriteRetry("x")
	m.ObserveAPI("/", "GET", 200, time.Second)
	m.IncReport("json", "success")
	if m.Registry() != nil {
		t.Fatalf("Registry: expected nil for nil metrics")
	}
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.IncReport("xlsx", "success")
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("Handler: want=200 got=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "agroregistry_dashboard_reports_total") {
		t.Fatalf("Handler: report counter missing from exposition")
	}
}

func TestParseHeaders(t *testing.T) {
	h := parseHeaders(" a=1, b = 2 ,broken,=x")
	if len(h) != 2 || h["a"] != "1" || h["b"] != "2" {
		t.Fatalf("parseHeaders: unexpected %+v", h)
	}
	if parseHeaders("") != nil {
		t.Fatalf("parseHeaders: expected nil for empty input")
	}
}
