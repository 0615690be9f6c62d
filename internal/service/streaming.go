package service

import (
	"log/slog"

	"bond_go/internal/domain"
)

// StreamingService publishes two-way price streams, keyed on CUSIP, and
// feeds the historical flow.
type StreamingService struct {
	*Cache[*domain.PriceStream]
}

// NewStreamingService creates an empty streaming service.
func NewStreamingService() *StreamingService {
	return &StreamingService{
		Cache: NewCache(func(ps *domain.PriceStream) string { return ps.Product.ProductID() }),
	}
}

// OnMessage is not used: streams arrive via PublishPrice from the
// streaming listener.
func (s *StreamingService) OnMessage(ps *domain.PriceStream) {}

// PublishPrice stores the stream and notifies listeners.
func (s *StreamingService) PublishPrice(ps *domain.PriceStream) {
	s.Store(ps)
	slog.Debug("price stream published", slog.String("cusip", ps.Product.CUSIP))
	s.NotifyAdd(ps)
}

// StreamingListener forwards algo-generated streams into the streaming
// service.
type StreamingListener struct {
	svc *StreamingService
}

// NewStreamingListener creates a listener that publishes into svc.
func NewStreamingListener(svc *StreamingService) *StreamingListener {
	return &StreamingListener{svc: svc}
}

// OnAdd is not used by this listener.
func (l *StreamingListener) OnAdd(ps *domain.PriceStream) {}

// OnRemove is not used by this listener.
func (l *StreamingListener) OnRemove(ps *domain.PriceStream) {}

// OnUpdate publishes the stream.
func (l *StreamingListener) OnUpdate(ps *domain.PriceStream) {
	l.svc.PublishPrice(ps)
}
