package domain

import "github.com/shopspring/decimal"

// PriceStreamOrder is one side of a published two-way stream.
type PriceStreamOrder struct {
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            PricingSide
}

// PriceStream is a two-way price published for one instrument.
type PriceStream struct {
	Product    Bond
	BidOrder   PriceStreamOrder
	OfferOrder PriceStreamOrder
}
