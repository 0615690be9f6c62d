package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

const validRefData = `
bonds:
  - cusip: CUSIP2Y
    ticker: US2Y
    coupon: "0.04875"
    maturity: "2025-11-30"
    pv01: "0.01"
  - cusip: CUSIP10Y
    ticker: US10Y
    coupon: "0.04500"
    maturity: "2033-11-15"
    pv01: "0.05"
sectors:
  - name: FrontEnd
    cusips: [CUSIP2Y]
  - name: Belly
    cusips: [CUSIP10Y]
`

func writeRefData(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "refdata.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRefData(t *testing.T) {
	rd, err := LoadRefData(writeRefData(t, validRefData))
	if err != nil {
		t.Fatalf("LoadRefData failed: %v", err)
	}

	bond, ok := rd.Bond("CUSIP2Y")
	if !ok {
		t.Fatal("CUSIP2Y not loaded")
	}
	if bond.Ticker != "US2Y" {
		t.Errorf("ticker = %q", bond.Ticker)
	}
	if !bond.PV01.Equal(decimal.NewFromFloat(0.01)) {
		t.Errorf("pv01 = %s", bond.PV01)
	}
	if bond.Maturity.Year() != 2025 {
		t.Errorf("maturity = %v", bond.Maturity)
	}

	if sector, ok := rd.SectorOf("CUSIP10Y"); !ok || sector != "Belly" {
		t.Errorf("SectorOf(CUSIP10Y) = %q, %v", sector, ok)
	}
}

func TestLoadRefDataRejectsUnknownSectorMember(t *testing.T) {
	broken := `
bonds:
  - cusip: CUSIP2Y
    ticker: US2Y
    maturity: "2025-11-30"
    pv01: "0.01"
sectors:
  - name: FrontEnd
    cusips: [MISSING]
`
	if _, err := LoadRefData(writeRefData(t, broken)); err == nil {
		t.Fatal("sector member outside the bond list should fail")
	}
}

func TestLoadRefDataRejectsBadMaturity(t *testing.T) {
	broken := `
bonds:
  - cusip: CUSIP2Y
    ticker: US2Y
    maturity: "30-11-2025"
    pv01: "0.01"
`
	if _, err := LoadRefData(writeRefData(t, broken)); err == nil {
		t.Fatal("malformed maturity should fail")
	}
}

func TestLoadRefDataRejectsEmpty(t *testing.T) {
	if _, err := LoadRefData(writeRefData(t, "bonds: []\n")); err == nil {
		t.Fatal("empty bond list should fail")
	}
}
