package feed

import (
	"context"
	"fmt"
	"io"
	"time"

	"bond_go/internal/domain"
)

// GUIWriter appends throttled price updates to the GUI output stream as
// timestamp,cusip,bid,offer records with both sides in fractional
// notation. Publish-only.
type GUIWriter struct {
	w       io.Writer
	nowFunc func() time.Time
}

// NewGUIWriter creates a writer appending to w.
func NewGUIWriter(w io.Writer) *GUIWriter {
	return &GUIWriter{w: w, nowFunc: time.Now}
}

// Subscribe is not supported: this connector is publish-only.
func (g *GUIWriter) Subscribe(ctx context.Context, r io.Reader) error {
	return nil
}

// Publish appends one price record with a millisecond timestamp.
func (g *GUIWriter) Publish(p *domain.Price) error {
	_, err := fmt.Fprintf(g.w, "%s,%s,%s,%s\n",
		g.nowFunc().Format("2006-01-02T15:04:05.000"),
		p.Product.CUSIP,
		domain.FormatFractional(p.Bid()),
		domain.FormatFractional(p.Offer()))
	return err
}
