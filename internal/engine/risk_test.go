package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bond_go/internal/domain"
)

func pv01(perUnit string, qty int64) *domain.PV01 {
	return &domain.PV01{PerUnit: price(perUnit), Quantity: qty}
}

func TestWeightedPV01(t *testing.T) {
	weighted, total := WeightedPV01([]*domain.PV01{
		pv01("0.01", 1_000_000),
		pv01("0.02", 3_000_000),
	})

	// (0.01*1M + 0.02*3M) / 4M
	assert.True(t, weighted.Equal(decimal.NewFromFloat(0.0175)), "weighted = %s", weighted)
	assert.Equal(t, int64(4_000_000), total)
}

func TestWeightedPV01SingleExposure(t *testing.T) {
	weighted, total := WeightedPV01([]*domain.PV01{pv01("0.05", 2_000_000)})

	assert.True(t, weighted.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, int64(2_000_000), total)
}

func TestWeightedPV01ZeroTotalQuantity(t *testing.T) {
	weighted, total := WeightedPV01([]*domain.PV01{
		pv01("0.01", 0),
		pv01("0.02", 0),
	})

	assert.True(t, weighted.IsZero(), "zero aggregate quantity yields zero weight")
	assert.Equal(t, int64(0), total)
}

func TestWeightedPV01NettedFlat(t *testing.T) {
	// Long and short legs cancel; the weighted sensitivity is defined as
	// zero rather than dividing by zero.
	weighted, total := WeightedPV01([]*domain.PV01{
		pv01("0.01", 1_000_000),
		pv01("0.02", -1_000_000),
	})

	assert.True(t, weighted.IsZero())
	assert.Equal(t, int64(0), total)
}

func TestWeightedPV01SkipsNilAndEmpty(t *testing.T) {
	weighted, total := WeightedPV01([]*domain.PV01{nil, pv01("0.03", 1_000_000), nil})
	assert.True(t, weighted.Equal(decimal.NewFromFloat(0.03)))
	assert.Equal(t, int64(1_000_000), total)

	weighted, total = WeightedPV01(nil)
	assert.True(t, weighted.IsZero())
	assert.Equal(t, int64(0), total)
}
