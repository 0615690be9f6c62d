package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InquiryState is the lifecycle state of a customer inquiry.
type InquiryState int

const (
	Received InquiryState = iota
	Quoted
	Done
	Rejected
	CustomerRejected
)

// String returns the string representation of InquiryState.
func (s InquiryState) String() string {
	switch s {
	case Received:
		return "RECEIVED"
	case Quoted:
		return "QUOTED"
	case Done:
		return "DONE"
	case Rejected:
		return "REJECTED"
	case CustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseInquiryState converts a feed token into an InquiryState.
func ParseInquiryState(s string) (InquiryState, error) {
	switch s {
	case "RECEIVED":
		return Received, nil
	case "QUOTED":
		return Quoted, nil
	case "DONE":
		return Done, nil
	case "REJECTED":
		return Rejected, nil
	case "CUSTOMER_REJECTED":
		return CustomerRejected, nil
	default:
		return Received, fmt.Errorf("unknown inquiry state %q", s)
	}
}

// Inquiry is a customer request for a quote, keyed on its own id rather
// than the product id.
type Inquiry struct {
	InquiryID string
	Product   Bond
	Side      TradeSide
	Quantity  int64
	Price     decimal.Decimal
	State     InquiryState
}
