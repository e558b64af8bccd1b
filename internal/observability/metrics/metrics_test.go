package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveCreated()
	m.ObserveFailure("validation")
	m.ObserveStoreLatency("create", 0.05)
	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveCreated()
	m.ObserveFailure("store")
	m.ObserveStoreLatency("list", 0.1)
	m.ObserveCacheLookup(false)
}
