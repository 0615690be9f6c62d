package service

import (
	"fmt"
	"log/slog"

	"bond_go/internal/domain"
	"bond_go/internal/engine"
)

// MarketDataService manages order books keyed on CUSIP and exposes the
// two book operations: best bid/offer and depth aggregation.
type MarketDataService struct {
	*Cache[*domain.OrderBook]
}

// NewMarketDataService creates an empty market data service.
func NewMarketDataService() *MarketDataService {
	return &MarketDataService{
		Cache: NewCache(func(b *domain.OrderBook) string { return b.Product.ProductID() }),
	}
}

// OnMessage stores the raw book and notifies every listener. Listeners
// see the book as submitted; depth aggregation is a separate operation.
func (s *MarketDataService) OnMessage(book *domain.OrderBook) {
	s.Store(book)
	slog.Debug("order book received",
		slog.String("cusip", book.Product.CUSIP),
		slog.Int("bids", len(book.BidStack)),
		slog.Int("offers", len(book.OfferStack)))
	s.NotifyAdd(book)
}

// BestBidOffer returns the highest bid and lowest offer resting in the
// stored book for an instrument. Returns domain.ErrNoLiquidity when either
// side is empty or the instrument has no book yet.
func (s *MarketDataService) BestBidOffer(productID string) (domain.BidOffer, error) {
	return engine.BestBidOffer(s.GetData(productID))
}

// AggregateDepth merges same-price orders in the stored book and replaces
// the stored book with the aggregated one.
func (s *MarketDataService) AggregateDepth(productID string) (*domain.OrderBook, error) {
	book := s.GetData(productID)
	if book == nil {
		return nil, fmt.Errorf("aggregate depth %s: %w", productID, domain.ErrUnknownInstrument)
	}
	agg := engine.AggregateDepth(book)
	s.Store(agg)
	return agg, nil
}
