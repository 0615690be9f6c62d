package domain

import "github.com/shopspring/decimal"

// PV01 is the live risk exposure of one instrument: a static per-unit
// sensitivity from reference data and the aggregate position quantity,
// which is the only mutable field.
type PV01 struct {
	Product  Bond
	PerUnit  decimal.Decimal
	Quantity int64
}

// Total returns the absolute exposure, per-unit sensitivity times
// quantity.
func (p *PV01) Total() decimal.Decimal {
	return p.PerUnit.Mul(decimal.NewFromInt(p.Quantity))
}

// SectorPV01 is the derived exposure of a bucketed sector: a
// quantity-weighted average per-unit sensitivity and the aggregate
// quantity across members. Recomputed in full on demand.
type SectorPV01 struct {
	Sector   BucketedSector
	PerUnit  decimal.Decimal
	Quantity int64
}
