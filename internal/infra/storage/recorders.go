package storage

import (
	"context"
	"io"
	"time"

	"bond_go/internal/domain"
	"bond_go/internal/service"
)

// Recorder connectors adapt the historical services to SQLite. All of
// them are publish-only; Subscribe is a no-op.

// AggregateBook is the pseudo-book under which the cross-book aggregate
// position is recorded.
const AggregateBook = "AGGREGATE"

// PositionRecorder persists positions, one row per traded book plus the
// aggregate row.
type PositionRecorder struct {
	store *Storage
}

// NewPositionRecorder creates a recorder writing to store.
func NewPositionRecorder(store *Storage) *PositionRecorder {
	return &PositionRecorder{store: store}
}

// Subscribe is not supported: recorders are publish-only.
func (r *PositionRecorder) Subscribe(ctx context.Context, rd io.Reader) error {
	return nil
}

// Publish writes the position snapshot.
func (r *PositionRecorder) Publish(pos *domain.Position) error {
	now := time.Now()
	var recs []domain.PositionRecord
	for _, book := range pos.Books() {
		recs = append(recs, domain.PositionRecord{
			RecordedAt: now,
			CUSIP:      pos.Product.CUSIP,
			Book:       book,
			Quantity:   pos.Quantity(book),
		})
	}
	recs = append(recs, domain.PositionRecord{
		RecordedAt: now,
		CUSIP:      pos.Product.CUSIP,
		Book:       AggregateBook,
		Quantity:   pos.Aggregate(),
	})
	return r.store.SavePositionRecords(recs)
}

// RiskRecorder persists instrument exposures and, alongside each one,
// the freshly recomputed exposure of the instrument's sector.
type RiskRecorder struct {
	store *Storage
	risk  *service.RiskService
	ref   domain.ReferenceData
}

// NewRiskRecorder creates a recorder writing to store. The risk service
// is consulted to recompute the sector bucket at persist time.
func NewRiskRecorder(store *Storage, risk *service.RiskService, ref domain.ReferenceData) *RiskRecorder {
	return &RiskRecorder{store: store, risk: risk, ref: ref}
}

// Subscribe is not supported: recorders are publish-only.
func (r *RiskRecorder) Subscribe(ctx context.Context, rd io.Reader) error {
	return nil
}

// Publish writes the instrument row and the recomputed sector row.
func (r *RiskRecorder) Publish(pv *domain.PV01) error {
	now := time.Now()
	if err := r.store.SaveRiskRecord(&domain.RiskRecord{
		RecordedAt: now,
		Key:        pv.Product.CUSIP,
		PV01:       pv.PerUnit,
		Quantity:   pv.Quantity,
	}); err != nil {
		return err
	}

	sector, ok := r.ref.SectorOf(pv.Product.CUSIP)
	if !ok {
		return nil
	}
	if err := r.risk.UpdateBucketedRisk(sector); err != nil {
		return err
	}
	bucket, ok := r.risk.BucketedRisk(sector)
	if !ok {
		return nil
	}
	return r.store.SaveRiskRecord(&domain.RiskRecord{
		RecordedAt: now,
		Key:        bucket.Sector.Name,
		Sector:     true,
		PV01:       bucket.PerUnit,
		Quantity:   bucket.Quantity,
	})
}

// ExecutionRecorder persists executed orders.
type ExecutionRecorder struct {
	store *Storage
}

// NewExecutionRecorder creates a recorder writing to store.
func NewExecutionRecorder(store *Storage) *ExecutionRecorder {
	return &ExecutionRecorder{store: store}
}

// Subscribe is not supported: recorders are publish-only.
func (r *ExecutionRecorder) Subscribe(ctx context.Context, rd io.Reader) error {
	return nil
}

// Publish writes the execution row.
func (r *ExecutionRecorder) Publish(o *domain.ExecutionOrder) error {
	return r.store.SaveExecutionRecord(&domain.ExecutionRecord{
		RecordedAt: time.Now(),
		CUSIP:      o.Product.CUSIP,
		OrderID:    o.OrderID,
		Side:       o.Side.String(),
		OrderType:  o.Type.String(),
		Price:      o.Price,
		Visible:    o.VisibleQuantity,
		Hidden:     o.HiddenQuantity,
		IsChild:    o.IsChildOrder,
	})
}

// StreamRecorder persists price streams, one row per side.
type StreamRecorder struct {
	store *Storage
}

// NewStreamRecorder creates a recorder writing to store.
func NewStreamRecorder(store *Storage) *StreamRecorder {
	return &StreamRecorder{store: store}
}

// Subscribe is not supported: recorders are publish-only.
func (r *StreamRecorder) Subscribe(ctx context.Context, rd io.Reader) error {
	return nil
}

// Publish writes both sides of the stream.
func (r *StreamRecorder) Publish(ps *domain.PriceStream) error {
	now := time.Now()
	return r.store.SaveStreamRecords([]domain.StreamRecord{
		{
			RecordedAt: now,
			CUSIP:      ps.Product.CUSIP,
			Side:       ps.BidOrder.Side.String(),
			Price:      ps.BidOrder.Price,
			Visible:    ps.BidOrder.VisibleQuantity,
			Hidden:     ps.BidOrder.HiddenQuantity,
		},
		{
			RecordedAt: now,
			CUSIP:      ps.Product.CUSIP,
			Side:       ps.OfferOrder.Side.String(),
			Price:      ps.OfferOrder.Price,
			Visible:    ps.OfferOrder.VisibleQuantity,
			Hidden:     ps.OfferOrder.HiddenQuantity,
		},
	})
}

// InquiryRecorder persists inquiry snapshots, one row per state
// transition.
type InquiryRecorder struct {
	store *Storage
}

// NewInquiryRecorder creates a recorder writing to store.
func NewInquiryRecorder(store *Storage) *InquiryRecorder {
	return &InquiryRecorder{store: store}
}

// Subscribe is not supported: recorders are publish-only.
func (r *InquiryRecorder) Subscribe(ctx context.Context, rd io.Reader) error {
	return nil
}

// Publish writes the inquiry snapshot.
func (r *InquiryRecorder) Publish(inq *domain.Inquiry) error {
	return r.store.SaveInquiryRecord(&domain.InquiryRecord{
		RecordedAt: time.Now(),
		InquiryID:  inq.InquiryID,
		CUSIP:      inq.Product.CUSIP,
		Side:       inq.Side.String(),
		Quantity:   inq.Quantity,
		Price:      inq.Price,
		State:      inq.State.String(),
	})
}
