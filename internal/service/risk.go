package service

import (
	"fmt"
	"log/slog"

	"bond_go/internal/domain"
	"bond_go/internal/engine"
)

// RiskService tracks PV01 exposures keyed on CUSIP plus derived bucketed
// sector exposures keyed on sector name. Per-instrument exposures are
// seeded from reference data with zero quantity; sector exposures start
// zeroed and are recomputed in full by UpdateBucketedRisk.
type RiskService struct {
	*Cache[*domain.PV01]

	ref     domain.ReferenceData
	buckets map[string]*domain.SectorPV01
}

// NewRiskService creates a risk service seeded from the reference data.
func NewRiskService(ref domain.ReferenceData) *RiskService {
	s := &RiskService{
		Cache:   NewCache(func(p *domain.PV01) string { return p.Product.ProductID() }),
		ref:     ref,
		buckets: make(map[string]*domain.SectorPV01),
	}
	for _, b := range ref.Instruments() {
		s.Store(&domain.PV01{Product: b, PerUnit: b.PV01})
	}
	for _, sector := range ref.Sectors() {
		s.buckets[sector.Name] = &domain.SectorPV01{Sector: sector}
	}
	return s
}

// OnMessage is not used: risk is driven by AddPosition via the risk
// listener, not by a connector.
func (s *RiskService) OnMessage(p *domain.PV01) {}

// AddPosition refreshes the instrument's exposure from the position's
// current aggregate and notifies listeners with the updated exposure.
// The position carries cumulative state, so the quantity is replaced,
// not accumulated.
func (s *RiskService) AddPosition(pos *domain.Position) {
	pv := s.GetData(pos.Product.ProductID())
	if pv == nil {
		slog.Warn("position for instrument outside reference data",
			slog.String("cusip", pos.Product.CUSIP))
		return
	}

	pv.Quantity = pos.Aggregate()

	slog.Info("risk updated",
		slog.String("cusip", pv.Product.CUSIP),
		slog.String("pv01", pv.PerUnit.String()),
		slog.Int64("quantity", pv.Quantity))

	s.NotifyAdd(pv)
}

// UpdateBucketedRisk recomputes the sector exposure from scratch by
// re-reading every member's current exposure. O(members) per call, which
// is fine because sector membership is small and static.
func (s *RiskService) UpdateBucketedRisk(sector string) error {
	bucket, ok := s.buckets[sector]
	if !ok {
		return fmt.Errorf("update bucketed risk %q: %w", sector, domain.ErrUnknownSector)
	}

	exposures := make([]*domain.PV01, 0, len(bucket.Sector.Products))
	for _, b := range bucket.Sector.Products {
		exposures = append(exposures, s.GetData(b.ProductID()))
	}

	weighted, total := engine.WeightedPV01(exposures)
	s.buckets[sector] = &domain.SectorPV01{
		Sector:   bucket.Sector,
		PerUnit:  weighted,
		Quantity: total,
	}
	return nil
}

// BucketedRisk returns the current derived exposure for a sector.
func (s *RiskService) BucketedRisk(sector string) (*domain.SectorPV01, bool) {
	pv, ok := s.buckets[sector]
	return pv, ok
}

// RiskListener forwards position updates into a risk service.
type RiskListener struct {
	svc *RiskService
}

// NewRiskListener creates a listener that feeds svc.
func NewRiskListener(svc *RiskService) *RiskListener {
	return &RiskListener{svc: svc}
}

// OnAdd is not used by this listener; the historical flow consumes adds.
func (l *RiskListener) OnAdd(p *domain.Position) {}

// OnRemove is not used by this listener.
func (l *RiskListener) OnRemove(p *domain.Position) {}

// OnUpdate folds the position change into the risk service.
func (l *RiskListener) OnUpdate(p *domain.Position) {
	l.svc.AddPosition(p)
}
