package config

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

// Config holds the settings of the demo registry.
type Config struct {
	// Count is the number of apartments generated for the demo registry.
	Count int `env:"APTREGISTRY_COUNT" default:"5"`
	// Lower and Upper bound the random values the tenant names are made of.
	Lower float64 `env:"APTREGISTRY_LOWER" default:"0"`
	Upper float64 `env:"APTREGISTRY_UPPER" default:"100"`
	// Seed makes the generated registry reproducible.
	Seed int64 `env:"APTREGISTRY_SEED" default:"42"`

	LogLevel logging.Level `env:"APTREGISTRY_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports ErrInvalidConfig for settings the registry cannot be built from.
func (c Config) Validate() error {
	if c.Count < 0 {
		return ErrInvalidConfig.F("APTREGISTRY_COUNT must not be negative, got %d", c.Count)
	}
	return nil
}
