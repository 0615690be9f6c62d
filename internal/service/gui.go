package service

import (
	"log/slog"
	"time"

	"bond_go/internal/domain"
)

// GUIService keeps the throttled view of prices shown to the GUI and
// pushes each accepted price out through a publish-only connector.
type GUIService struct {
	*Cache[*domain.Price]

	conn       Connector[*domain.Price]
	throttle   time.Duration
	maxUpdates int
}

// NewGUIService creates a GUI service with the given throttle interval
// and update cap. SetConnector must be called before any price flows.
func NewGUIService(throttle time.Duration, maxUpdates int) *GUIService {
	if maxUpdates <= 0 {
		maxUpdates = defaultGUIUpdateCap
	}
	return &GUIService{
		Cache:      NewCache(func(p *domain.Price) string { return p.Product.ProductID() }),
		throttle:   throttle,
		maxUpdates: maxUpdates,
	}
}

// SetConnector attaches the output connector.
func (s *GUIService) SetConnector(conn Connector[*domain.Price]) {
	s.conn = conn
}

// OnMessage is not used: the GUI is driven by AddPrice via its throttled
// listener, not by a connector.
func (s *GUIService) OnMessage(p *domain.Price) {}

// AddPrice stores the price and publishes it to the GUI output.
func (s *GUIService) AddPrice(p *domain.Price) {
	s.Store(p)
	if err := s.conn.Publish(p); err != nil {
		slog.Error("gui publish failed", slog.Any("error", err))
	}
}

// Throttle returns the configured throttle interval.
func (s *GUIService) Throttle() time.Duration {
	return s.throttle
}

// MaxUpdates returns the cap on updates reaching the GUI output.
func (s *GUIService) MaxUpdates() int {
	return s.maxUpdates
}

// defaultGUIUpdateCap bounds GUI output when no cap is configured.
const defaultGUIUpdateCap = 100

// GUIListener forwards prices to the GUI service, throttled to the
// service's interval and capped at the service's update limit.
type GUIListener struct {
	svc *GUIService

	last    time.Time
	count   int
	nowFunc func() time.Time
}

// NewGUIListener creates a throttled listener for svc.
func NewGUIListener(svc *GUIService) *GUIListener {
	return &GUIListener{
		svc:     svc,
		nowFunc: time.Now,
	}
}

// OnAdd forwards the price if the throttle interval has elapsed and the
// update cap has not been reached.
func (l *GUIListener) OnAdd(p *domain.Price) {
	now := l.nowFunc()
	if l.count >= l.svc.MaxUpdates() || now.Sub(l.last) < l.svc.Throttle() {
		return
	}
	l.svc.AddPrice(p)
	l.count++
	l.last = now
}

// OnRemove is not used by this listener.
func (l *GUIListener) OnRemove(p *domain.Price) {}

// OnUpdate is not used by this listener.
func (l *GUIListener) OnUpdate(p *domain.Price) {}
