package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config holds the engine's runtime settings, parsed from the environment.
type Config struct {
	Port                 string        `env:"PORT" envDefault:"8080"`
	GinMode              string        `env:"GIN_MODE" envDefault:"release"`
	DatabaseDSN          string        `env:"DATABASE_DSN"`
	MinBidIncrement      string        `env:"MIN_BID_INCREMENT" envDefault:"1"`
	SweepInterval        time.Duration `env:"SWEEP_INTERVAL" envDefault:"5s"`
	SweepBatchSize       int           `env:"SWEEP_BATCH_SIZE" envDefault:"100"`
	NotificationPageSize int           `env:"NOTIFICATION_PAGE_SIZE" envDefault:"50"`

	minIncrement decimal.Decimal
}

// Load parses the environment and validates the settings.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	inc, err := decimal.NewFromString(cfg.MinBidIncrement)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid MIN_BID_INCREMENT %q: %w", cfg.MinBidIncrement, err)
	}
	if !inc.IsPositive() {
		return Config{}, fmt.Errorf("config: MIN_BID_INCREMENT must be positive, got %q", cfg.MinBidIncrement)
	}
	cfg.minIncrement = inc

	if cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("config: SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	return cfg, nil
}

// MinIncrement returns the minimum amount a bid must exceed the current
// price by.
func (c Config) MinIncrement() decimal.Decimal {
	return c.minIncrement
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
