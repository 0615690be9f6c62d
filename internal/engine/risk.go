package engine

import (
	"github.com/shopspring/decimal"

	"bond_go/internal/domain"
)

// WeightedPV01 computes the quantity-weighted average per-unit PV01 and
// the total quantity across a set of exposures. A zero total quantity
// yields a zero weighted PV01 rather than a division by zero.
func WeightedPV01(exposures []*domain.PV01) (decimal.Decimal, int64) {
	var total int64
	cumulative := decimal.Zero

	for _, e := range exposures {
		if e == nil {
			continue
		}
		total += e.Quantity
		cumulative = cumulative.Add(e.PerUnit.Mul(decimal.NewFromInt(e.Quantity)))
	}

	if total == 0 {
		return decimal.Zero, 0
	}
	return cumulative.Div(decimal.NewFromInt(total)), total
}
