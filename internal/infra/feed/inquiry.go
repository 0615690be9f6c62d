package feed

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"bond_go/internal/domain"
	"bond_go/internal/service"
)

// InquiryConnector reads customer inquiries from a file and plays the
// client side of the quote round trip. Records are
// inquiryId,cusip,side,quantity,state. Publish receives the dealer's
// quote and answers on behalf of the client: a quoted RECEIVED inquiry
// transitions to QUOTED and then DONE, each state flowing back through
// the service.
type InquiryConnector struct {
	svc service.Service[*domain.Inquiry]
	ref domain.ReferenceData
}

// NewInquiryConnector creates a connector feeding svc.
func NewInquiryConnector(svc service.Service[*domain.Inquiry], ref domain.ReferenceData) *InquiryConnector {
	return &InquiryConnector{svc: svc, ref: ref}
}

// Subscribe streams inquiry records into the inquiry service.
func (c *InquiryConnector) Subscribe(ctx context.Context, r io.Reader) error {
	return scanRecords(ctx, r, "inquiries", 5, func(line int, rec []string) error {
		bond, ok := c.ref.Bond(rec[1])
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownInstrument, rec[1])
		}
		qty, err := strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return err
		}
		state, err := domain.ParseInquiryState(rec[4])
		if err != nil {
			return err
		}

		c.svc.OnMessage(&domain.Inquiry{
			InquiryID: rec[0],
			Product:   bond,
			Side:      domain.ParseTradeSide(rec[2]),
			Quantity:  qty,
			State:     state,
		})
		return nil
	})
}

// Publish completes the round trip for a quoted inquiry.
func (c *InquiryConnector) Publish(inq *domain.Inquiry) error {
	switch inq.State {
	case domain.Received:
		inq.State = domain.Quoted
		c.svc.OnMessage(inq)
		inq.State = domain.Done
		c.svc.OnMessage(inq)
	case domain.Rejected:
		c.svc.OnMessage(inq)
	}
	return nil
}
