package service

import (
	"log/slog"

	"bond_go/internal/domain"
)

// Stream sizing: visible size alternates between one and two million on
// successive updates, hidden is always twice visible.
const (
	streamSizeSmall = 1_000_000
	streamSizeLarge = 2_000_000
)

// AlgoStreamingService turns internal prices into two-way price streams,
// keyed on CUSIP.
type AlgoStreamingService struct {
	*Cache[*domain.PriceStream]

	counter int64
}

// NewAlgoStreamingService creates an empty algo streaming service.
func NewAlgoStreamingService() *AlgoStreamingService {
	return &AlgoStreamingService{
		Cache: NewCache(func(ps *domain.PriceStream) string { return ps.Product.ProductID() }),
	}
}

// OnMessage is not used: streams are generated by PublishPrice via the
// algo streaming listener.
func (s *AlgoStreamingService) OnMessage(ps *domain.PriceStream) {}

// PublishPrice builds a two-way stream around the price and notifies the
// streaming listeners.
func (s *AlgoStreamingService) PublishPrice(p *domain.Price) {
	visible := int64(streamSizeLarge)
	if s.counter%2 == 1 {
		visible = streamSizeSmall
	}
	s.counter++

	stream := &domain.PriceStream{
		Product: p.Product,
		BidOrder: domain.PriceStreamOrder{
			Price:           p.Bid(),
			VisibleQuantity: visible,
			HiddenQuantity:  2 * visible,
			Side:            domain.Bid,
		},
		OfferOrder: domain.PriceStreamOrder{
			Price:           p.Offer(),
			VisibleQuantity: visible,
			HiddenQuantity:  2 * visible,
			Side:            domain.Offer,
		},
	}
	s.Store(stream)

	slog.Debug("algo stream generated", slog.String("cusip", p.Product.CUSIP))
	s.NotifyUpdate(stream)
}

// AlgoStreamingListener feeds prices from the pricing service into the
// algo streaming service.
type AlgoStreamingListener struct {
	svc *AlgoStreamingService
}

// NewAlgoStreamingListener creates a listener that drives svc.
func NewAlgoStreamingListener(svc *AlgoStreamingService) *AlgoStreamingListener {
	return &AlgoStreamingListener{svc: svc}
}

// OnAdd republishes the price as a two-way stream.
func (l *AlgoStreamingListener) OnAdd(p *domain.Price) {
	l.svc.PublishPrice(p)
}

// OnRemove is not used by this listener.
func (l *AlgoStreamingListener) OnRemove(p *domain.Price) {}

// OnUpdate is not used by this listener.
func (l *AlgoStreamingListener) OnUpdate(p *domain.Price) {}
