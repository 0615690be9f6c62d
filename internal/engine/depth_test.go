package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bond_go/internal/domain"
)

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func book(bids, offers []domain.Order) *domain.OrderBook {
	return &domain.OrderBook{BidStack: bids, OfferStack: offers}
}

func bid(p string, q int64) domain.Order {
	return domain.Order{Price: price(p), Quantity: q, Side: domain.Bid}
}

func offer(p string, q int64) domain.Order {
	return domain.Order{Price: price(p), Quantity: q, Side: domain.Offer}
}

func TestBestBidOffer(t *testing.T) {
	b := book(
		[]domain.Order{bid("100.5", 100), bid("101.0", 200), bid("100.75", 300)},
		[]domain.Order{offer("101.25", 100), offer("101.1", 200), offer("101.5", 300)},
	)

	best, err := BestBidOffer(b)
	require.NoError(t, err)
	assert.True(t, best.BidOrder.Price.Equal(price("101.0")), "best bid is the highest bid")
	assert.True(t, best.OfferOrder.Price.Equal(price("101.1")), "best offer is the lowest offer")
	assert.True(t, best.Spread().Equal(price("0.1")))
}

func TestBestBidOfferTieKeepsFirst(t *testing.T) {
	b := book(
		[]domain.Order{bid("101.0", 100), bid("101.0", 200)},
		[]domain.Order{offer("101.1", 300), offer("101.1", 400)},
	)

	best, err := BestBidOffer(b)
	require.NoError(t, err)
	assert.Equal(t, int64(100), best.BidOrder.Quantity)
	assert.Equal(t, int64(300), best.OfferOrder.Quantity)
}

func TestBestBidOfferNoLiquidity(t *testing.T) {
	cases := map[string]*domain.OrderBook{
		"nil book":   nil,
		"empty book": book(nil, nil),
		"no bids":    book(nil, []domain.Order{offer("101.1", 100)}),
		"no offers":  book([]domain.Order{bid("101.0", 100)}, nil),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BestBidOffer(b)
			assert.ErrorIs(t, err, domain.ErrNoLiquidity)
		})
	}
}

func TestAggregateDepthMergesSamePriceLevels(t *testing.T) {
	b := book(
		[]domain.Order{bid("100.5", 500), bid("100.5", 700), bid("100.25", 100)},
		[]domain.Order{offer("100.75", 200), offer("101.0", 300), offer("100.75", 400)},
	)

	agg := AggregateDepth(b)

	require.Len(t, agg.BidStack, 2)
	assert.True(t, agg.BidStack[0].Price.Equal(price("100.5")))
	assert.Equal(t, int64(1200), agg.BidStack[0].Quantity)
	assert.True(t, agg.BidStack[1].Price.Equal(price("100.25")))

	require.Len(t, agg.OfferStack, 2)
	assert.True(t, agg.OfferStack[0].Price.Equal(price("100.75")))
	assert.Equal(t, int64(600), agg.OfferStack[0].Quantity)
	assert.True(t, agg.OfferStack[1].Price.Equal(price("101.0")))
}

func TestAggregateDepthSortsBestFirst(t *testing.T) {
	b := book(
		[]domain.Order{bid("99.5", 1), bid("100.5", 2), bid("100.0", 3)},
		[]domain.Order{offer("101.5", 1), offer("100.75", 2), offer("101.0", 3)},
	)

	agg := AggregateDepth(b)

	for i := 1; i < len(agg.BidStack); i++ {
		assert.True(t, agg.BidStack[i-1].Price.GreaterThan(agg.BidStack[i].Price),
			"bids sorted descending")
	}
	for i := 1; i < len(agg.OfferStack); i++ {
		assert.True(t, agg.OfferStack[i-1].Price.LessThan(agg.OfferStack[i].Price),
			"offers sorted ascending")
	}
}

func TestAggregateDepthIdempotent(t *testing.T) {
	b := book(
		[]domain.Order{bid("100.5", 500), bid("100.5", 700)},
		[]domain.Order{offer("100.75", 200), offer("100.75", 400)},
	)

	once := AggregateDepth(b)
	twice := AggregateDepth(once)

	require.Len(t, twice.BidStack, 1)
	assert.Equal(t, int64(1200), twice.BidStack[0].Quantity)
	require.Len(t, twice.OfferStack, 1)
	assert.Equal(t, int64(600), twice.OfferStack[0].Quantity)
}

func TestAggregateDepthPreservesBestBidOffer(t *testing.T) {
	b := book(
		[]domain.Order{bid("100.5", 500), bid("101.0", 200), bid("100.5", 700)},
		[]domain.Order{offer("101.25", 100), offer("101.1", 200)},
	)

	before, err := BestBidOffer(b)
	require.NoError(t, err)
	after, err := BestBidOffer(AggregateDepth(b))
	require.NoError(t, err)

	assert.True(t, before.BidOrder.Price.Equal(after.BidOrder.Price))
	assert.True(t, before.OfferOrder.Price.Equal(after.OfferOrder.Price))
}
