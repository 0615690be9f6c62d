package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	two          = decimal.NewFromInt(2)
	thirtySecond = decimal.NewFromInt(32)
	tick         = decimal.NewFromInt(256) // smallest treasury increment is 1/256
)

// Price is an internal mid quote with a bid/offer spread around it.
type Price struct {
	Product        Bond
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// Bid returns the bid side of the quote, mid minus half the spread.
func (p *Price) Bid() decimal.Decimal {
	return p.Mid.Sub(p.BidOfferSpread.Div(two))
}

// Offer returns the offer side of the quote, mid plus half the spread.
func (p *Price) Offer() decimal.Decimal {
	return p.Mid.Add(p.BidOfferSpread.Div(two))
}

// ParseFractional converts a treasury price string like "99-16+" into a
// decimal. The two digits after the dash are 32nds and the final character
// is eighths of a 32nd (i.e. 256ths), with "+" standing for 4.
func ParseFractional(s string) (decimal.Decimal, error) {
	handle, frac, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || len(frac) != 3 {
		return decimal.Zero, fmt.Errorf("malformed fractional price %q", s)
	}

	whole, err := strconv.ParseInt(handle, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed fractional price %q: %w", s, err)
	}
	thirty, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil || thirty > 31 {
		return decimal.Zero, fmt.Errorf("malformed 32nds in price %q", s)
	}

	var eighth int64
	if frac[2] == '+' {
		eighth = 4
	} else {
		eighth, err = strconv.ParseInt(frac[2:], 10, 64)
		if err != nil || eighth > 7 {
			return decimal.Zero, fmt.Errorf("malformed 256ths in price %q", s)
		}
	}

	return decimal.NewFromInt(whole).
		Add(decimal.NewFromInt(thirty).Div(thirtySecond)).
		Add(decimal.NewFromInt(eighth).Div(tick)), nil
}

// FormatFractional renders a decimal price in treasury fractional notation,
// truncating anything below 1/256.
func FormatFractional(d decimal.Decimal) string {
	whole := d.Floor()
	ticks := d.Sub(whole).Mul(tick).IntPart() // 0..255
	thirty := ticks / 8
	eighth := ticks % 8

	out := fmt.Sprintf("%s-%02d", whole.String(), thirty)
	if eighth == 4 {
		return out + "+"
	}
	return out + strconv.FormatInt(eighth, 10)
}
