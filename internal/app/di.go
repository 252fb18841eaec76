package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tsgrowth/internal/render"
	"tsgrowth/internal/series"
	"tsgrowth/internal/slogx"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideLogger builds the stderr logger from config (for Wire).
func ProvideLogger(cfg *Config) *slog.Logger {
	return slogx.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// ProvideGenerator creates a Generator owning its own random source (for Wire).
func ProvideGenerator(cfg *Config) *series.Generator {
	return series.NewGenerator(cfg.SeedPtr())
}

// ProvideRenderer creates Renderer from config (for Wire).
// Returns error if OutputFormat is not supported.
func ProvideRenderer(cfg *Config) (render.Renderer, error) {
	r := render.NewRenderer(cfg.OutputFormat)
	if r == nil {
		return nil, fmt.Errorf("unsupported OUTPUT_FORMAT %q (use: %s)", cfg.OutputFormat, strings.Join(render.Formats, ", "))
	}
	return r, nil
}
