//go:build wireinject
// +build wireinject

package main

import (
	"tsgrowth/internal/app"

	"github.com/google/wire"
)

// InitializeApp builds App (Config, Logger, Generator, Renderer) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideGenerator,
		app.ProvideRenderer,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
