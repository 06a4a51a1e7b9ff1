package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-memory request and error counters for the CMS API,
// keyed by route, method and status. A nil receiver is a no-op so
// handlers under test can run without wiring metrics.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
}

// NewMetrics initializes counter storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
	}
}

// RecordRequest counts a completed HTTP request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := counterKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError counts a request that ended in a domain error, keyed by
// the error code (VALIDATION_FAILED, NOT_FOUND, ...).
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := counterKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

func counterKey(path, method, suffix string) string {
	return path + "|" + method + "|" + suffix
}
