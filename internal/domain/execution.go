package domain

import "github.com/shopspring/decimal"

// OrderType is the execution style of an order.
type OrderType int

const (
	FOK OrderType = iota
	IOC
	MarketOrder
	Limit
	Stop
)

// String returns the string representation of OrderType.
func (t OrderType) String() string {
	switch t {
	case FOK:
		return "FOK"
	case IOC:
		return "IOC"
	case MarketOrder:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case Stop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Market is an execution venue.
type Market int

const (
	Brokertec Market = iota
	Espeed
	CME
)

// String returns the string representation of Market.
func (m Market) String() string {
	switch m {
	case Brokertec:
		return "BROKERTEC"
	case Espeed:
		return "ESPEED"
	case CME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}

// ExecutionOrder is an order sent to a venue, split into visible and
// hidden quantities.
type ExecutionOrder struct {
	Product         Bond
	Side            PricingSide
	OrderID         string
	Type            OrderType
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChildOrder    bool
}

// TotalQuantity returns visible plus hidden quantity.
func (o *ExecutionOrder) TotalQuantity() int64 {
	return o.VisibleQuantity + o.HiddenQuantity
}
