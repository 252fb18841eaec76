package main

import (
	"io"
	"log/slog"
	"os"

	"tsgrowth/internal/app"
	"tsgrowth/internal/render"
	"tsgrowth/internal/series"
	"tsgrowth/internal/slogx"
)

// App holds application dependencies built by Wire.
type App struct {
	Config    *app.Config
	Logger    *slog.Logger
	Generator *series.Generator
	Renderer  render.Renderer
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	os.Exit(run(os.Stdout))
}

func run(stdout io.Writer) int {
	a, err := InitializeApp()
	if err != nil {
		app.ReportError(stdout, slog.Default(), err)
		return 1
	}
	slog.SetDefault(a.Logger)

	if _, err := app.Run(a.Config, a.Generator, a.Renderer, stdout, a.Logger); err != nil {
		app.ReportError(stdout, a.Logger, err)
		return 1
	}
	return 0
}
