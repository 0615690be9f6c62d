package service

import (
	"log/slog"

	"bond_go/internal/infra"
)

// HistoricalService persists pipeline data through a publish-only
// recorder connector, keeping the latest value per key in memory. One
// instance exists per persisted data type.
type HistoricalService[V any] struct {
	*Cache[V]

	recorder Connector[V]
}

// NewHistoricalService creates a historical service keyed by key(v).
// SetRecorder must be called before any data flows.
func NewHistoricalService[V any](key func(V) string) *HistoricalService[V] {
	return &HistoricalService[V]{
		Cache: NewCache(key),
	}
}

// SetRecorder attaches the recorder connector.
func (s *HistoricalService[V]) SetRecorder(recorder Connector[V]) {
	s.recorder = recorder
}

// OnMessage is not used: historical data arrives via PersistData from
// the historical listener.
func (s *HistoricalService[V]) OnMessage(v V) {}

// PersistData stores the value and publishes it through the recorder.
// Recorder failures are logged and do not abort the pipeline.
func (s *HistoricalService[V]) PersistData(v V) {
	s.Store(v)
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Publish(v); err != nil {
		infra.GlobalMetrics.RecordPersistFailure()
		slog.Error("historical persist failed", slog.Any("error", err))
	}
}

// HistoricalListener feeds a historical service from any upstream
// service's add events.
type HistoricalListener[V any] struct {
	svc *HistoricalService[V]
}

// NewHistoricalListener creates a listener that persists into svc.
func NewHistoricalListener[V any](svc *HistoricalService[V]) *HistoricalListener[V] {
	return &HistoricalListener[V]{svc: svc}
}

// OnAdd persists the value.
func (l *HistoricalListener[V]) OnAdd(v V) {
	l.svc.PersistData(v)
}

// OnRemove is not used by this listener.
func (l *HistoricalListener[V]) OnRemove(v V) {}

// OnUpdate is not used by this listener.
func (l *HistoricalListener[V]) OnUpdate(v V) {}
