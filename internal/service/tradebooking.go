package service

import (
	"log/slog"

	"github.com/google/uuid"

	"bond_go/internal/domain"
	"bond_go/internal/infra"
)

// TradeBookingService books trades, keyed on trade id. It is fed both by
// the trade file connector and by the execution listener downstream of the
// algo execution flow.
type TradeBookingService struct {
	*Cache[*domain.Trade]
}

// NewTradeBookingService creates an empty trade booking service.
func NewTradeBookingService() *TradeBookingService {
	return &TradeBookingService{
		Cache: NewCache(func(t *domain.Trade) string { return t.TradeID }),
	}
}

// OnMessage books the trade.
func (s *TradeBookingService) OnMessage(t *domain.Trade) {
	s.BookTrade(t)
}

// BookTrade stores the trade and notifies the position listeners.
func (s *TradeBookingService) BookTrade(t *domain.Trade) {
	s.Store(t)
	infra.GlobalMetrics.RecordTradeBooked()
	slog.Info("trade booked",
		slog.String("trade_id", t.TradeID),
		slog.String("cusip", t.Product.CUSIP),
		slog.String("book", t.Book),
		slog.Int64("quantity", t.Quantity),
		slog.String("side", t.Side.String()))
	s.NotifyUpdate(t)
}

// tradeBooks are the internal books trades rotate across.
var tradeBooks = [...]string{"TRSY1", "TRSY2", "TRSY3"}

// TradeBookingListener turns execution orders into trades, rotating
// across the internal books. An executed offer-side order was bought,
// a bid-side order sold.
type TradeBookingListener struct {
	svc     *TradeBookingService
	counter int
}

// NewTradeBookingListener creates a listener that books into svc.
func NewTradeBookingListener(svc *TradeBookingService) *TradeBookingListener {
	return &TradeBookingListener{svc: svc}
}

// OnAdd books a trade for the executed order.
func (l *TradeBookingListener) OnAdd(o *domain.ExecutionOrder) {
	side := domain.Sell
	if o.Side == domain.Offer {
		side = domain.Buy
	}

	trade := &domain.Trade{
		Product:  o.Product,
		TradeID:  uuid.NewString(),
		Price:    o.Price,
		Book:     tradeBooks[l.counter],
		Quantity: o.TotalQuantity(),
		Side:     side,
	}
	l.counter = (l.counter + 1) % len(tradeBooks)

	l.svc.BookTrade(trade)
}

// OnRemove is not used by this listener.
func (l *TradeBookingListener) OnRemove(o *domain.ExecutionOrder) {}

// OnUpdate is not used by this listener.
func (l *TradeBookingListener) OnUpdate(o *domain.ExecutionOrder) {}
