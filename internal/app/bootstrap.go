package app

import (
	"log/slog"

	"bond_go/internal/domain"
	"bond_go/internal/infra"
	"bond_go/internal/infra/storage"
)

// Bootstrap orchestrates the application startup sequence.
type Bootstrap struct {
	Config  *infra.Config
	Storage *storage.Storage
	RefData *domain.RefData
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization (config, logging, DB,
// reference data).
func (b *Bootstrap) Initialize(configPath string) error {
	slog.Info("🚀 Bootstrapping Bond Go...")

	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Initialize Storage (DB)
	store, err := storage.NewStorage(cfg.Storage.Path)
	if err != nil {
		return err
	}
	b.Storage = store
	slog.Info("✅ Database initialized")

	// 4. Load Reference Data
	ref, err := infra.LoadRefData(cfg.RefData.Path)
	if err != nil {
		return err
	}
	b.RefData = ref
	slog.Info("✅ Reference data loaded", slog.Int("instruments", len(ref.Instruments())))

	return nil
}
