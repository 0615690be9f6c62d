package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"bond_go/internal/domain"
)

// quotePrice is the flat quote sent back for every received inquiry.
var quotePrice = decimal.NewFromInt(100)

// InquiryService manages customer inquiries, keyed on inquiry id. It
// publishes quoted inquiries back through its connector, which round-trips
// them to QUOTED and then DONE. The listener mutates the stored inquiry
// in place before the republish; that shared-reference behavior is load
// bearing.
type InquiryService struct {
	*Cache[*domain.Inquiry]

	conn Connector[*domain.Inquiry]
}

// NewInquiryService creates an empty inquiry service. SetConnector must be
// called before any message flows.
func NewInquiryService() *InquiryService {
	return &InquiryService{
		Cache: NewCache(func(i *domain.Inquiry) string { return i.InquiryID }),
	}
}

// SetConnector attaches the connector used to publish quotes back to the
// client.
func (s *InquiryService) SetConnector(conn Connector[*domain.Inquiry]) {
	s.conn = conn
}

// OnMessage stores the inquiry and notifies listeners: OnAdd for the
// historical flow, then OnUpdate so the quoting listener can respond.
func (s *InquiryService) OnMessage(inq *domain.Inquiry) {
	s.Store(inq)
	slog.Info("inquiry received",
		slog.String("inquiry_id", inq.InquiryID),
		slog.String("cusip", inq.Product.CUSIP),
		slog.String("state", inq.State.String()))
	s.NotifyAdd(inq)
	s.NotifyUpdate(inq)
}

// SendQuote sets the quoted price on the stored inquiry and publishes it
// back to the client.
func (s *InquiryService) SendQuote(inquiryID string, price decimal.Decimal) {
	inq := s.GetData(inquiryID)
	if inq == nil {
		slog.Warn("quote for unknown inquiry", slog.String("inquiry_id", inquiryID))
		return
	}
	inq.Price = price

	slog.Info("quote sent",
		slog.String("inquiry_id", inquiryID),
		slog.String("price", price.String()))
	if err := s.conn.Publish(inq); err != nil {
		slog.Error("inquiry publish failed", slog.Any("error", err))
	}
}

// RejectInquiry transitions the stored inquiry to REJECTED and publishes
// it back to the client.
func (s *InquiryService) RejectInquiry(inquiryID string) {
	inq := s.GetData(inquiryID)
	if inq == nil {
		slog.Warn("reject for unknown inquiry", slog.String("inquiry_id", inquiryID))
		return
	}
	inq.State = domain.Rejected

	slog.Info("inquiry rejected", slog.String("inquiry_id", inquiryID))
	if err := s.conn.Publish(inq); err != nil {
		slog.Error("inquiry publish failed", slog.Any("error", err))
	}
}

// InquiryListener quotes every inquiry that arrives in the RECEIVED
// state.
type InquiryListener struct {
	svc *InquiryService
}

// NewInquiryListener creates a listener that quotes through svc.
func NewInquiryListener(svc *InquiryService) *InquiryListener {
	return &InquiryListener{svc: svc}
}

// OnAdd is not used by this listener; the historical flow consumes adds.
func (l *InquiryListener) OnAdd(inq *domain.Inquiry) {}

// OnRemove is not used by this listener.
func (l *InquiryListener) OnRemove(inq *domain.Inquiry) {}

// OnUpdate sends back the flat quote while the inquiry is still RECEIVED.
func (l *InquiryListener) OnUpdate(inq *domain.Inquiry) {
	if inq.State == domain.Received {
		l.svc.SendQuote(inq.InquiryID, quotePrice)
	}
}
