package feed

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"bond_go/internal/domain"
	"bond_go/internal/service"
)

// TradeBookingConnector reads booked trades from a file. Records are
// cusip,tradeId,price,book,quantity,side with the price in fractional
// notation. Subscribe-only.
type TradeBookingConnector struct {
	svc service.Service[*domain.Trade]
	ref domain.ReferenceData
}

// NewTradeBookingConnector creates a connector feeding svc.
func NewTradeBookingConnector(svc service.Service[*domain.Trade], ref domain.ReferenceData) *TradeBookingConnector {
	return &TradeBookingConnector{svc: svc, ref: ref}
}

// Subscribe streams trade records into the trade booking service.
func (c *TradeBookingConnector) Subscribe(ctx context.Context, r io.Reader) error {
	return scanRecords(ctx, r, "trades", 6, func(line int, rec []string) error {
		bond, ok := c.ref.Bond(rec[0])
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownInstrument, rec[0])
		}
		price, err := domain.ParseFractional(rec[2])
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(rec[4], 10, 64)
		if err != nil {
			return err
		}

		c.svc.OnMessage(&domain.Trade{
			Product:  bond,
			TradeID:  rec[1],
			Price:    price,
			Book:     rec[3],
			Quantity: qty,
			Side:     domain.ParseTradeSide(rec[5]),
		})
		return nil
	})
}

// Publish is not supported: this connector is subscribe-only.
func (c *TradeBookingConnector) Publish(t *domain.Trade) error {
	return nil
}
