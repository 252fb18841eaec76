package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "TSGROWTH"

// Config holds application configuration from env.
// Defaults reproduce the reference run: 10 points, seed 42, column "value".
type Config struct {
	NPoints      int    `envconfig:"N_POINTS" default:"10"`
	Seed         int64  `envconfig:"SEED" default:"42"`
	Unseeded     bool   `envconfig:"UNSEEDED" default:"false"`
	Column       string `envconfig:"COLUMN" default:"value" validate:"required"`
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"table" validate:"oneof=table csv json"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"` // debug | info | warn | error
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

var validate = validator.New()

// LoadConfig reads config from environment and validates it.
// NPoints is deliberately left to the generator, which owns that precondition.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// SeedPtr returns the configured seed, or nil when the run is unseeded.
func (c *Config) SeedPtr() *int64 {
	if c.Unseeded {
		return nil
	}
	seed := c.Seed
	return &seed
}
