package service

import (
	"log/slog"

	"bond_go/internal/domain"
	"bond_go/internal/infra"
)

// ExecutionService places execution orders on a venue, keyed on CUSIP,
// and feeds trade booking and the historical flow.
type ExecutionService struct {
	*Cache[*domain.ExecutionOrder]
}

// NewExecutionService creates an empty execution service.
func NewExecutionService() *ExecutionService {
	return &ExecutionService{
		Cache: NewCache(func(o *domain.ExecutionOrder) string { return o.Product.ProductID() }),
	}
}

// OnMessage is not used: orders arrive via ExecuteOrder from the
// execution listener.
func (s *ExecutionService) OnMessage(o *domain.ExecutionOrder) {}

// ExecuteOrder stores the order and notifies listeners.
func (s *ExecutionService) ExecuteOrder(o *domain.ExecutionOrder, market domain.Market) {
	s.Store(o)
	infra.GlobalMetrics.RecordOrderExecuted()
	slog.Info("order executed",
		slog.String("cusip", o.Product.CUSIP),
		slog.String("order_id", o.OrderID),
		slog.String("market", market.String()))
	s.NotifyAdd(o)
}

// executionMarkets are the venues orders rotate across.
var executionMarkets = [...]domain.Market{domain.Brokertec, domain.Espeed, domain.CME}

// ExecutionListener takes algo-generated orders and places them on a
// venue, rotating across markets.
type ExecutionListener struct {
	svc     *ExecutionService
	counter int
}

// NewExecutionListener creates a listener that places orders on svc.
func NewExecutionListener(svc *ExecutionService) *ExecutionListener {
	return &ExecutionListener{svc: svc}
}

// OnAdd is not used by this listener.
func (l *ExecutionListener) OnAdd(o *domain.ExecutionOrder) {}

// OnRemove is not used by this listener.
func (l *ExecutionListener) OnRemove(o *domain.ExecutionOrder) {}

// OnUpdate places the algo order on the next venue in rotation.
func (l *ExecutionListener) OnUpdate(o *domain.ExecutionOrder) {
	market := executionMarkets[l.counter]
	l.counter = (l.counter + 1) % len(executionMarkets)
	l.svc.ExecuteOrder(o, market)
}
