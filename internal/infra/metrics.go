package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight pipeline observability without external
// dependencies. Uses atomic operations for thread-safety.
type Metrics struct {
	recordsIngested atomic.Uint64
	recordsSkipped  atomic.Uint64
	tradesBooked    atomic.Uint64
	ordersExecuted  atomic.Uint64
	persistFailures atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordIngested counts a feed record successfully parsed and flowed.
func (m *Metrics) RecordIngested() {
	m.recordsIngested.Add(1)
}

// RecordSkipped counts a malformed feed record that was dropped.
func (m *Metrics) RecordSkipped() {
	m.recordsSkipped.Add(1)
}

// RecordTradeBooked counts a booked trade.
func (m *Metrics) RecordTradeBooked() {
	m.tradesBooked.Add(1)
}

// RecordOrderExecuted counts an executed order.
func (m *Metrics) RecordOrderExecuted() {
	m.ordersExecuted.Add(1)
}

// RecordPersistFailure counts a failed historical persist.
func (m *Metrics) RecordPersistFailure() {
	m.persistFailures.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	RecordsIngested uint64
	RecordsSkipped  uint64
	TradesBooked    uint64
	OrdersExecuted  uint64
	PersistFailures uint64
	Timestamp       time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RecordsIngested: m.recordsIngested.Load(),
		RecordsSkipped:  m.recordsSkipped.Load(),
		TradesBooked:    m.tradesBooked.Load(),
		OrdersExecuted:  m.ordersExecuted.Load(),
		PersistFailures: m.persistFailures.Load(),
		Timestamp:       time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.recordsIngested.Store(0)
	m.recordsSkipped.Store(0)
	m.tradesBooked.Store(0)
	m.ordersExecuted.Store(0)
	m.persistFailures.Store(0)
}
