package infra

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"bond_go/internal/domain"
)

// refDataFile mirrors the on-disk reference-data layout.
type refDataFile struct {
	Bonds []struct {
		CUSIP    string          `yaml:"cusip"`
		Ticker   string          `yaml:"ticker"`
		Coupon   decimal.Decimal `yaml:"coupon"`
		Maturity string          `yaml:"maturity"`
		PV01     decimal.Decimal `yaml:"pv01"`
	} `yaml:"bonds"`
	Sectors []struct {
		Name   string   `yaml:"name"`
		CUSIPs []string `yaml:"cusips"`
	} `yaml:"sectors"`
}

// LoadRefData reads the instrument and sector definitions from a yaml
// file. Sector members must reference defined instruments.
func LoadRefData(path string) (*domain.RefData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file refDataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Bonds) == 0 {
		return nil, fmt.Errorf("refdata %s: no instruments defined", path)
	}

	bonds := make([]domain.Bond, 0, len(file.Bonds))
	byCUSIP := make(map[string]domain.Bond, len(file.Bonds))
	for _, b := range file.Bonds {
		maturity, err := time.Parse("2006-01-02", b.Maturity)
		if err != nil {
			return nil, fmt.Errorf("refdata %s: bond %s: %w", path, b.CUSIP, err)
		}
		bond := domain.Bond{
			CUSIP:    b.CUSIP,
			Ticker:   b.Ticker,
			Coupon:   b.Coupon,
			Maturity: maturity,
			PV01:     b.PV01,
		}
		bonds = append(bonds, bond)
		byCUSIP[bond.CUSIP] = bond
	}

	sectors := make([]domain.BucketedSector, 0, len(file.Sectors))
	for _, s := range file.Sectors {
		sector := domain.BucketedSector{Name: s.Name}
		for _, cusip := range s.CUSIPs {
			bond, ok := byCUSIP[cusip]
			if !ok {
				return nil, fmt.Errorf("refdata %s: sector %s references unknown cusip %s", path, s.Name, cusip)
			}
			sector.Products = append(sector.Products, bond)
		}
		sectors = append(sectors, sector)
	}

	return domain.NewRefData(bonds, sectors), nil
}
