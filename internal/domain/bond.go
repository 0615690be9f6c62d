package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Bond is the static description of a single treasury instrument.
type Bond struct {
	CUSIP    string          `json:"cusip"`
	Ticker   string          `json:"ticker"` // e.g. "US10Y"
	Coupon   decimal.Decimal `json:"coupon"`
	Maturity time.Time       `json:"maturity"`
	PV01     decimal.Decimal `json:"pv01"` // risk per unit of notional
}

// ProductID returns the identifier every service keys on.
func (b Bond) ProductID() string {
	return b.CUSIP
}

// BucketedSector is a named, statically-defined group of instruments
// whose risk is aggregated together. Membership never changes after
// construction.
type BucketedSector struct {
	Name     string
	Products []Bond
}

// RefData is the in-memory reference-data table: instrument static data
// and sector membership. Loaded once at startup, read-only afterwards.
type RefData struct {
	bonds    map[string]Bond
	sectors  map[string]BucketedSector
	sectorOf map[string]string // cusip -> sector name
}

// NewRefData builds the lookup indexes from instrument and sector lists.
func NewRefData(bonds []Bond, sectors []BucketedSector) *RefData {
	rd := &RefData{
		bonds:    make(map[string]Bond, len(bonds)),
		sectors:  make(map[string]BucketedSector, len(sectors)),
		sectorOf: make(map[string]string),
	}
	for _, b := range bonds {
		rd.bonds[b.CUSIP] = b
	}
	for _, s := range sectors {
		rd.sectors[s.Name] = s
		for _, b := range s.Products {
			rd.sectorOf[b.CUSIP] = s.Name
		}
	}
	return rd
}

// Bond returns the instrument for a CUSIP.
func (rd *RefData) Bond(cusip string) (Bond, bool) {
	b, ok := rd.bonds[cusip]
	return b, ok
}

// Instruments returns every known instrument sorted by CUSIP.
func (rd *RefData) Instruments() []Bond {
	out := make([]Bond, 0, len(rd.bonds))
	for _, b := range rd.bonds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CUSIP < out[j].CUSIP })
	return out
}

// Sectors returns every bucketed sector sorted by name.
func (rd *RefData) Sectors() []BucketedSector {
	out := make([]BucketedSector, 0, len(rd.sectors))
	for _, s := range rd.sectors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Sector returns the sector with the given name.
func (rd *RefData) Sector(name string) (BucketedSector, bool) {
	s, ok := rd.sectors[name]
	return s, ok
}

// SectorOf returns the name of the sector an instrument belongs to.
func (rd *RefData) SectorOf(cusip string) (string, bool) {
	name, ok := rd.sectorOf[cusip]
	return name, ok
}
