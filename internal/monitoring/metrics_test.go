package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsCollector(t *testing.T) {
	collector := NewMetricsCollector()

	require.NotNil(t, collector)
	assert.NotNil(t, collector.Registry())
	assert.Len(t, collector.metrics, 4)
}

func TestRecordRequest(t *testing.T) {
	collector := NewMetricsCollector()

	collector.RecordRequest("analyze", "ok")
	collector.RecordRequest("analyze", "ok")
	collector.RecordRequest("analyze", "invalid")

	requests := collector.metrics["requests"].(*prometheus.CounterVec)
	assert.Equal(t, 2, testutil.CollectAndCount(requests))
	assert.Equal(t, 2.0, testutil.ToFloat64(requests.WithLabelValues("analyze", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(requests.WithLabelValues("analyze", "invalid")))
}

func TestRecordMissingEssentials(t *testing.T) {
	collector := NewMetricsCollector()

	collector.RecordMissingEssentials(11)

	assert.Equal(t, 11.0, testutil.ToFloat64(collector.metrics["missing_essentials"]))
}

func TestRecordInventory(t *testing.T) {
	collector := NewMetricsCollector()

	collector.RecordInventory(map[string]int{"low": 2, "in_stock": 5})
	collector.RecordInventory(map[string]int{"in_stock": 6})

	items := collector.metrics["inventory_items"].(*prometheus.GaugeVec)
	assert.Equal(t, 1, testutil.CollectAndCount(items))
	assert.Equal(t, 6.0, testutil.ToFloat64(items.WithLabelValues("in_stock")))
}

func TestMetricsHandler(t *testing.T) {
	collector := NewMetricsCollector()
	collector.RecordSuggestions("pantry", 8)
	collector.RecordRequest("suggest", "ok")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	collector.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "pantry_suggestions_returned_count"))
	assert.True(t, strings.Contains(body, `pantry_requests_total{operation="suggest",outcome="ok"} 1`))
}
