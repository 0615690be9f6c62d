package service

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bond_go/internal/domain"
	"bond_go/internal/engine"
)

// tightestSpread is 1/128: the algo only aggresses the book when the
// bid/offer spread has collapsed to the minimum increment pair.
var tightestSpread = decimal.NewFromInt(1).Div(decimal.NewFromInt(128))

// visibleRatio splits an execution order 1:3 visible to hidden.
const visibleRatio = 4

// AlgoExecutionService watches order books and crosses the spread with a
// market order when the spread is at its tightest, alternating sides on
// successive orders. Keyed on CUSIP.
type AlgoExecutionService struct {
	*Cache[*domain.ExecutionOrder]

	counter int64
}

// NewAlgoExecutionService creates an empty algo execution service.
func NewAlgoExecutionService() *AlgoExecutionService {
	return &AlgoExecutionService{
		Cache: NewCache(func(o *domain.ExecutionOrder) string { return o.Product.ProductID() }),
	}
}

// OnMessage is not used: orders are generated by SendOrder via the algo
// execution listener, not received from a connector.
func (s *AlgoExecutionService) OnMessage(o *domain.ExecutionOrder) {}

// SendOrder aggresses the top of the book if the spread is tight enough.
// Books with an empty side are skipped.
func (s *AlgoExecutionService) SendOrder(book *domain.OrderBook) {
	best, err := engine.BestBidOffer(book)
	if err != nil {
		if !errors.Is(err, domain.ErrNoLiquidity) {
			slog.Warn("best bid/offer failed", slog.Any("error", err))
		}
		return
	}

	if best.Spread().GreaterThan(tightestSpread) {
		return
	}

	// Alternate the aggressed side on successive orders, bid first.
	side := domain.Bid
	top := best.BidOrder
	if s.counter%2 == 1 {
		side = domain.Offer
		top = best.OfferOrder
	}

	visible := top.Quantity / visibleRatio
	order := &domain.ExecutionOrder{
		Product:         book.Product,
		Side:            side,
		OrderID:         uuid.NewString(),
		Type:            domain.MarketOrder,
		Price:           top.Price,
		VisibleQuantity: visible,
		HiddenQuantity:  top.Quantity - visible,
	}
	s.Store(order)
	s.counter++

	slog.Info("algo order generated",
		slog.String("cusip", book.Product.CUSIP),
		slog.String("order_id", order.OrderID),
		slog.String("side", side.String()),
		slog.Int64("quantity", order.TotalQuantity()))

	s.NotifyUpdate(order)
}

// AlgoExecutionListener feeds order books from the market data service
// into the algo.
type AlgoExecutionListener struct {
	svc *AlgoExecutionService
}

// NewAlgoExecutionListener creates a listener that drives svc.
func NewAlgoExecutionListener(svc *AlgoExecutionService) *AlgoExecutionListener {
	return &AlgoExecutionListener{svc: svc}
}

// OnAdd lets the algo inspect the new book.
func (l *AlgoExecutionListener) OnAdd(book *domain.OrderBook) {
	l.svc.SendOrder(book)
}

// OnRemove is not used by this listener.
func (l *AlgoExecutionListener) OnRemove(book *domain.OrderBook) {}

// OnUpdate is not used by this listener.
func (l *AlgoExecutionListener) OnUpdate(book *domain.OrderBook) {}
