package feed

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"bond_go/internal/domain"
	"bond_go/internal/service"
)

// bookDepth is the number of levels per side in a full book update.
const bookDepth = 5

// MarketDataConnector reads order book updates from a file. Records are
// cusip,price,quantity,side with the price in fractional notation; a
// full update is bookDepth bids plus bookDepth offers for one cusip, and
// the assembled book is delivered once both sides are complete.
// Subscribe-only.
type MarketDataConnector struct {
	svc service.Service[*domain.OrderBook]
	ref domain.ReferenceData

	pending map[string]*domain.OrderBook
}

// NewMarketDataConnector creates a connector feeding svc.
func NewMarketDataConnector(svc service.Service[*domain.OrderBook], ref domain.ReferenceData) *MarketDataConnector {
	return &MarketDataConnector{
		svc:     svc,
		ref:     ref,
		pending: make(map[string]*domain.OrderBook),
	}
}

// Subscribe streams book updates into the market data service.
func (c *MarketDataConnector) Subscribe(ctx context.Context, r io.Reader) error {
	return scanRecords(ctx, r, "marketdata", 4, func(line int, rec []string) error {
		bond, ok := c.ref.Bond(rec[0])
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownInstrument, rec[0])
		}
		price, err := domain.ParseFractional(rec[1])
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return err
		}

		var side domain.PricingSide
		switch rec[3] {
		case "BID":
			side = domain.Bid
		case "OFFER":
			side = domain.Offer
		default:
			return fmt.Errorf("unknown side %q", rec[3])
		}

		book := c.pending[bond.CUSIP]
		if book == nil {
			book = &domain.OrderBook{Product: bond}
			c.pending[bond.CUSIP] = book
		}
		order := domain.Order{Price: price, Quantity: qty, Side: side}
		if side == domain.Bid {
			book.BidStack = append(book.BidStack, order)
		} else {
			book.OfferStack = append(book.OfferStack, order)
		}

		if len(book.BidStack) == bookDepth && len(book.OfferStack) == bookDepth {
			delete(c.pending, bond.CUSIP)
			c.svc.OnMessage(book)
		}
		return nil
	})
}

// Publish is not supported: this connector is subscribe-only.
func (c *MarketDataConnector) Publish(b *domain.OrderBook) error {
	return nil
}
