package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"bond_go/internal/domain"
)

type event struct {
	kind string // "add", "remove", "update"
	name string // listener name
	val  string
}

// recordingListener appends every callback to a shared journal so tests
// can assert fan-out order across listeners.
type recordingListener struct {
	name    string
	journal *[]event
}

func (l *recordingListener) OnAdd(v string) {
	*l.journal = append(*l.journal, event{"add", l.name, v})
}

func (l *recordingListener) OnRemove(v string) {
	*l.journal = append(*l.journal, event{"remove", l.name, v})
}

func (l *recordingListener) OnUpdate(v string) {
	*l.journal = append(*l.journal, event{"update", l.name, v})
}

func TestCacheStoreAndGet(t *testing.T) {
	c := NewCache(func(v string) string { return v[:1] })

	if existed := c.Store("a1"); existed {
		t.Error("first store should report a new key")
	}
	if got := c.GetData("a"); got != "a1" {
		t.Errorf("GetData(a) = %q", got)
	}

	// Same key again: last write wins.
	if existed := c.Store("a2"); !existed {
		t.Error("second store should report an existing key")
	}
	if got := c.GetData("a"); got != "a2" {
		t.Errorf("GetData(a) after rewrite = %q", got)
	}
}

func TestCacheGetDataMissYieldsZeroValue(t *testing.T) {
	c := NewCache(func(v *domain.Price) string { return v.Product.ProductID() })
	if got := c.GetData("nope"); got != nil {
		t.Errorf("miss should yield nil, got %v", got)
	}
}

func TestCacheFanOutOrder(t *testing.T) {
	var journal []event
	c := NewCache(func(v string) string { return v })
	c.AddListener(&recordingListener{name: "L1", journal: &journal})
	c.AddListener(&recordingListener{name: "L2", journal: &journal})
	c.AddListener(&recordingListener{name: "L3", journal: &journal})

	c.NotifyAdd("x")
	c.NotifyUpdate("x")
	c.NotifyRemove("x")

	want := []event{
		{"add", "L1", "x"}, {"add", "L2", "x"}, {"add", "L3", "x"},
		{"update", "L1", "x"}, {"update", "L2", "x"}, {"update", "L3", "x"},
		{"remove", "L1", "x"}, {"remove", "L2", "x"}, {"remove", "L3", "x"},
	}
	if len(journal) != len(want) {
		t.Fatalf("journal has %d events, want %d", len(journal), len(want))
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, journal[i], want[i])
		}
	}
}

func TestCacheNotifyWithoutListeners(t *testing.T) {
	c := NewCache(func(v int) string { return "k" })
	// Must not panic.
	c.NotifyAdd(1)
	c.NotifyUpdate(2)
	c.NotifyRemove(3)

	if got := len(c.Listeners()); got != 0 {
		t.Errorf("Listeners() = %d, want 0", got)
	}
}

// testRefData builds a two-sector reference-data table used across the
// pipeline tests.
func testRefData() *domain.RefData {
	twoYear := domain.Bond{CUSIP: "CUSIP2Y", Ticker: "US2Y", PV01: decimal.NewFromFloat(0.01)}
	threeYear := domain.Bond{CUSIP: "CUSIP3Y", Ticker: "US3Y", PV01: decimal.NewFromFloat(0.02)}
	tenYear := domain.Bond{CUSIP: "CUSIP10Y", Ticker: "US10Y", PV01: decimal.NewFromFloat(0.05)}
	return domain.NewRefData(
		[]domain.Bond{twoYear, threeYear, tenYear},
		[]domain.BucketedSector{
			{Name: "FrontEnd", Products: []domain.Bond{twoYear, threeYear}},
			{Name: "Belly", Products: []domain.Bond{tenYear}},
		},
	)
}
