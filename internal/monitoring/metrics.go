package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector exposes analyzer activity to Prometheus
type MetricsCollector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewMetricsCollector creates a collector with its own registry
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_requests_total",
			Help: "Analyzer operations served",
		},
		[]string{"operation", "outcome"},
	)

	suggestions := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pantry_suggestions_returned",
			Help:    "Number of suggestions returned per request",
			Buckets: prometheus.LinearBuckets(0, 2, 8),
		},
		[]string{"flow"},
	)

	missingEssentials := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pantry_missing_essentials",
			Help: "Missing essentials found by the latest analysis",
		},
	)

	inventoryItems := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pantry_inventory_items",
			Help: "Tracked inventory items by stock status",
		},
		[]string{"status"},
	)

	metrics := map[string]prometheus.Collector{
		"requests":           requests,
		"suggestions":        suggestions,
		"missing_essentials": missingEssentials,
		"inventory_items":    inventoryItems,
	}

	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &MetricsCollector{
		registry: registry,
		metrics:  metrics,
	}
}

// Registry returns the registry backing the collector
func (mc *MetricsCollector) Registry() *prometheus.Registry {
	return mc.registry
}

// Handler serves the collector's metrics in the Prometheus text format
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}

// RecordRequest counts a served operation
func (mc *MetricsCollector) RecordRequest(operation, outcome string) {
	if counter, ok := mc.metrics["requests"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(operation, outcome).Inc()
	}
}

// RecordSuggestions observes the size of a suggestion list
func (mc *MetricsCollector) RecordSuggestions(flow string, count int) {
	if histogram, ok := mc.metrics["suggestions"].(*prometheus.HistogramVec); ok {
		histogram.WithLabelValues(flow).Observe(float64(count))
	}
}

// RecordMissingEssentials sets the missing-essentials gauge
func (mc *MetricsCollector) RecordMissingEssentials(count int) {
	if gauge, ok := mc.metrics["missing_essentials"].(prometheus.Gauge); ok {
		gauge.Set(float64(count))
	}
}

// RecordInventory replaces the per-status inventory gauges
func (mc *MetricsCollector) RecordInventory(byStatus map[string]int) {
	if gauge, ok := mc.metrics["inventory_items"].(*prometheus.GaugeVec); ok {
		gauge.Reset()
		for status, count := range byStatus {
			gauge.WithLabelValues(status).Set(float64(count))
		}
	}
}
