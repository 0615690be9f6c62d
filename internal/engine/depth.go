package engine

import (
	"sort"

	"bond_go/internal/domain"
)

// BestBidOffer scans both stacks of a book and returns the order with the
// highest price on the bid side and the lowest price on the offer side.
// Ties go to the first order encountered, so the result is stable on
// input order. An empty side yields domain.ErrNoLiquidity.
func BestBidOffer(book *domain.OrderBook) (domain.BidOffer, error) {
	if book == nil || len(book.BidStack) == 0 || len(book.OfferStack) == 0 {
		return domain.BidOffer{}, domain.ErrNoLiquidity
	}

	bestBid := book.BidStack[0]
	for _, o := range book.BidStack[1:] {
		if o.Price.GreaterThan(bestBid.Price) {
			bestBid = o
		}
	}

	bestOffer := book.OfferStack[0]
	for _, o := range book.OfferStack[1:] {
		if o.Price.LessThan(bestOffer.Price) {
			bestOffer = o
		}
	}

	return domain.BidOffer{BidOrder: bestBid, OfferOrder: bestOffer}, nil
}

// AggregateDepth merges orders at the same price on each side, summing
// quantities, and returns a new book with one order per distinct price
// level. Output is sorted best-first: bids descending, offers ascending.
// The operation is idempotent on an already-aggregated book.
func AggregateDepth(book *domain.OrderBook) *domain.OrderBook {
	bids := mergeLevels(book.BidStack, domain.Bid)
	sort.Slice(bids, func(i, j int) bool { return bids[i].Price.GreaterThan(bids[j].Price) })

	offers := mergeLevels(book.OfferStack, domain.Offer)
	sort.Slice(offers, func(i, j int) bool { return offers[i].Price.LessThan(offers[j].Price) })

	return &domain.OrderBook{
		Product:    book.Product,
		BidStack:   bids,
		OfferStack: offers,
	}
}

// mergeLevels groups a stack by exact price value. Grouping keys on the
// canonical decimal string so numerically equal prices always merge.
func mergeLevels(stack []domain.Order, side domain.PricingSide) []domain.Order {
	levels := make(map[string]int)
	merged := make([]domain.Order, 0, len(stack))

	for _, o := range stack {
		key := o.Price.String()
		if i, ok := levels[key]; ok {
			merged[i].Quantity += o.Quantity
			continue
		}
		levels[key] = len(merged)
		merged = append(merged, domain.Order{Price: o.Price, Quantity: o.Quantity, Side: side})
	}
	return merged
}
