package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bond_go/internal/domain"
)

// Config holds the full application configuration. After LoadConfig
// parses the file, selected values can be overridden from the
// environment.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Data struct {
		Prices     string `yaml:"prices"`
		MarketData string `yaml:"marketdata"`
		Trades     string `yaml:"trades"`
		Inquiries  string `yaml:"inquiries"`
		GUIOut     string `yaml:"gui_out"`
	} `yaml:"data"`

	RefData struct {
		Path string `yaml:"path"`
	} `yaml:"refdata"`

	GUI struct {
		ThrottleMS int `yaml:"throttle_ms"`
		MaxUpdates int `yaml:"max_updates"`
	} `yaml:"gui"`

	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Data.Prices == "" {
		return fmt.Errorf("prices data file is required")
	}
	if c.Data.MarketData == "" {
		return fmt.Errorf("marketdata data file is required")
	}
	if c.Data.Trades == "" {
		return fmt.Errorf("trades data file is required")
	}
	if c.Data.Inquiries == "" {
		return fmt.Errorf("inquiries data file is required")
	}
	if c.RefData.Path == "" {
		return fmt.Errorf("refdata path is required")
	}
	if c.GUI.ThrottleMS <= 0 {
		return fmt.Errorf("gui throttle must be positive")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}
	return nil
}

// overrideWithEnv replaces configuration values from the environment
// when set. Paths are the only values that differ across deployments.
func overrideWithEnv(cfg *Config) {
	if path := os.Getenv("BOND_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if path := os.Getenv("BOND_REFDATA_PATH"); path != "" {
		cfg.RefData.Path = path
	}
	if level := os.Getenv("BOND_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
