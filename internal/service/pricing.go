package service

import (
	"log/slog"

	"bond_go/internal/domain"
)

// PricingService manages internal mid/spread prices keyed on CUSIP. It is
// fed by the price file connector and fans out to the GUI and algo
// streaming listeners.
type PricingService struct {
	*Cache[*domain.Price]
}

// NewPricingService creates an empty pricing service.
func NewPricingService() *PricingService {
	return &PricingService{
		Cache: NewCache(func(p *domain.Price) string { return p.Product.ProductID() }),
	}
}

// OnMessage stores the price and notifies every listener.
func (s *PricingService) OnMessage(p *domain.Price) {
	s.Store(p)
	slog.Debug("price received",
		slog.String("cusip", p.Product.CUSIP),
		slog.String("mid", p.Mid.String()))
	s.NotifyAdd(p)
}
