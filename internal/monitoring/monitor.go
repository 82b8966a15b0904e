package monitoring

import (
	"sync"
	"time"
)

// Monitor holds per-operation call counts and last results for /api/metrics
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor starts the uptime clock
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric stores a standalone value such as the tracked item count
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetrics snapshots every recorded value plus uptime_seconds
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// RecordOperation bumps the call counter of an analyzer operation and stores
// its result fields under the operation prefix, e.g. "suggest_count"
func (m *Monitor) RecordOperation(operation string, fields map[string]interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	prefix := operation + "_"

	calls, _ := m.metrics[prefix+"calls"].(int)
	m.metrics[prefix+"calls"] = calls + 1

	for k, v := range fields {
		m.metrics[prefix+k] = v
	}

	m.metrics[prefix+"last_called"] = time.Now().Format(time.RFC3339)
}
