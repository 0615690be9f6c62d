package domain

import "github.com/shopspring/decimal"

// TradeSide is the direction of a trade or inquiry.
type TradeSide int

const (
	Buy TradeSide = iota
	Sell
)

// String returns the string representation of TradeSide.
func (s TradeSide) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseTradeSide converts a feed token into a TradeSide. Anything other
// than "SELL" is a buy, matching the upstream feed convention.
func ParseTradeSide(s string) TradeSide {
	if s == "SELL" {
		return Sell
	}
	return Buy
}

// Trade is a booked trade in a particular book.
type Trade struct {
	Product  Bond
	TradeID  string
	Price    decimal.Decimal
	Book     string
	Quantity int64
	Side     TradeSide
}
