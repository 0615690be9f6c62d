package domain

import "github.com/shopspring/decimal"

// PricingSide is the side of a resting order or stream.
type PricingSide int

const (
	Bid PricingSide = iota
	Offer
)

// String returns the string representation of PricingSide.
func (s PricingSide) String() string {
	switch s {
	case Bid:
		return "BID"
	case Offer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// Order is a single resting order in a book. Immutable once constructed.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     PricingSide
}

// OrderBook holds both sides of the market for one instrument. No price
// ordering is guaranteed within a stack; callers may submit unsorted
// orders.
type OrderBook struct {
	Product    Bond
	BidStack   []Order
	OfferStack []Order
}

// BidOffer is the single best order on each side of a book at a point in
// time.
type BidOffer struct {
	BidOrder   Order
	OfferOrder Order
}

// Spread returns the offer price minus the bid price.
func (bo BidOffer) Spread() decimal.Decimal {
	return bo.OfferOrder.Price.Sub(bo.BidOrder.Price)
}
