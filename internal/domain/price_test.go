package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseFractional(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"99-000", "99"},
		{"99-160", "99.5"},
		{"99-16+", "99.515625"},    // 16/32 + 4/256
		{"100-312", "100.9765625"}, // 31/32 + 2/256
		{"0-001", "0.00390625"},    // one tick
		{"97-317", "97.99609375"},  // largest fraction
	}
	for _, c := range cases {
		got, err := ParseFractional(c.in)
		if err != nil {
			t.Fatalf("ParseFractional(%q) failed: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Errorf("ParseFractional(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseFractionalRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "99", "99-3", "99-320", "99-168", "99-1+0", "abc-160", "99-xy0"} {
		if _, err := ParseFractional(in); err == nil {
			t.Errorf("ParseFractional(%q) should fail", in)
		}
	}
}

func TestFormatFractional(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"99", "99-000"},
		{"99.5", "99-160"},
		{"99.515625", "99-16+"},
		{"100.9765625", "100-312"},
		{"97.99609375", "97-317"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatFractional(d); got != c.want {
			t.Errorf("FormatFractional(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFractionalRoundTrip(t *testing.T) {
	for _, s := range []string{"99-000", "99-16+", "100-312", "97-317", "0-001"} {
		d, err := ParseFractional(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got := FormatFractional(d); got != s {
			t.Errorf("round trip %q -> %s", s, got)
		}
	}
}

func TestPriceBidOffer(t *testing.T) {
	mid, _ := decimal.NewFromString("99.515625")
	spread := decimal.NewFromInt(1).Div(decimal.NewFromInt(128))
	p := &Price{Mid: mid, BidOfferSpread: spread}

	if got := p.Bid(); !got.Equal(mid.Sub(spread.Div(decimal.NewFromInt(2)))) {
		t.Errorf("Bid() = %s", got)
	}
	if got := p.Offer(); !got.Equal(mid.Add(spread.Div(decimal.NewFromInt(2)))) {
		t.Errorf("Offer() = %s", got)
	}
	if !p.Offer().Sub(p.Bid()).Equal(spread) {
		t.Error("offer minus bid should equal the spread")
	}
}
