package feed

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"bond_go/internal/domain"
	"bond_go/internal/service"
)

var two = decimal.NewFromInt(2)

// PricingConnector reads internal prices from a file. Records are
// cusip,bid,offer with both sides in fractional notation. Subscribe-only.
type PricingConnector struct {
	svc service.Service[*domain.Price]
	ref domain.ReferenceData
}

// NewPricingConnector creates a connector feeding svc.
func NewPricingConnector(svc service.Service[*domain.Price], ref domain.ReferenceData) *PricingConnector {
	return &PricingConnector{svc: svc, ref: ref}
}

// Subscribe streams price records into the pricing service.
func (c *PricingConnector) Subscribe(ctx context.Context, r io.Reader) error {
	return scanRecords(ctx, r, "prices", 3, func(line int, rec []string) error {
		bond, ok := c.ref.Bond(rec[0])
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownInstrument, rec[0])
		}
		bid, err := domain.ParseFractional(rec[1])
		if err != nil {
			return err
		}
		offer, err := domain.ParseFractional(rec[2])
		if err != nil {
			return err
		}

		c.svc.OnMessage(&domain.Price{
			Product:        bond,
			Mid:            bid.Add(offer).Div(two),
			BidOfferSpread: offer.Sub(bid),
		})
		return nil
	})
}

// Publish is not supported: this connector is subscribe-only.
func (c *PricingConnector) Publish(p *domain.Price) error {
	return nil
}
