package service

import (
	"log/slog"

	"bond_go/internal/domain"
)

// PositionService tracks per-book and aggregate positions keyed on CUSIP.
// Positions are seeded at zero for every instrument in the reference data,
// so GetData never sees an unknown CUSIP from the booking flow.
type PositionService struct {
	*Cache[*domain.Position]
}

// NewPositionService creates a position service pre-seeded with a zero
// position for every known instrument.
func NewPositionService(ref domain.ReferenceData) *PositionService {
	s := &PositionService{
		Cache: NewCache(func(p *domain.Position) string { return p.Product.ProductID() }),
	}
	for _, b := range ref.Instruments() {
		s.Store(domain.NewPosition(b))
	}
	return s
}

// OnMessage is not used: positions are driven by AddTrade via the
// position listener, not by a connector.
func (s *PositionService) OnMessage(p *domain.Position) {}

// AddTrade applies a booked trade to the instrument's position and
// notifies listeners: OnUpdate for the risk flow, then OnAdd for the
// historical flow.
func (s *PositionService) AddTrade(t *domain.Trade) {
	pos := s.GetData(t.Product.ProductID())
	if pos == nil {
		pos = domain.NewPosition(t.Product)
		s.Store(pos)
	}

	quantity := t.Quantity
	if t.Side == domain.Sell {
		quantity = -quantity
	}
	pos.Add(t.Book, quantity)

	slog.Info("position updated",
		slog.String("cusip", t.Product.CUSIP),
		slog.String("book", t.Book),
		slog.Int64("quantity", quantity),
		slog.Int64("aggregate", pos.Aggregate()))

	s.NotifyUpdate(pos)
	s.NotifyAdd(pos)
}

// PositionListener forwards booked trades into a position service.
type PositionListener struct {
	svc *PositionService
}

// NewPositionListener creates a listener that applies trades to svc.
func NewPositionListener(svc *PositionService) *PositionListener {
	return &PositionListener{svc: svc}
}

// OnAdd is not used by this listener.
func (l *PositionListener) OnAdd(t *domain.Trade) {}

// OnRemove is not used by this listener.
func (l *PositionListener) OnRemove(t *domain.Trade) {}

// OnUpdate applies the booked trade.
func (l *PositionListener) OnUpdate(t *domain.Trade) {
	l.svc.AddTrade(t)
}
