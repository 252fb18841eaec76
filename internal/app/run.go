package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"tsgrowth/internal/apperr"
	"tsgrowth/internal/growth"
	"tsgrowth/internal/render"
	"tsgrowth/internal/series"
)

// Run orchestrates one pass: generate → derive flags → growth share → render to out.
func Run(cfg *Config, gen *series.Generator, r render.Renderer, out io.Writer, logger *slog.Logger) (growth.Summary, error) {
	logger = logger.With("run_id", uuid.NewString())
	seed := cfg.SeedPtr()
	if seed != nil {
		logger.Debug("generating series", "n_points", cfg.NPoints, "seed", *seed)
	} else {
		logger.Debug("generating series", "n_points", cfg.NPoints, "seed", "entropy")
	}

	s, err := gen.Generate(cfg.NPoints, seed)
	if err != nil {
		return growth.Summary{}, err
	}
	logger.Debug("series generated", "rows", s.Len())

	fs, err := growth.DeriveGrowthFlag(s, cfg.Column)
	if err != nil {
		return growth.Summary{}, err
	}

	sum, err := growth.Summarize(fs)
	if err != nil {
		return growth.Summary{}, err
	}
	logger.Info("growth share computed", "rows", sum.Rows, "growth", sum.Growth, "share", sum.Share, "format", r.Format())

	if err := r.Render(out, fs, sum); err != nil {
		return sum, fmt.Errorf("render %s: %w", r.Format(), err)
	}
	return sum, nil
}

// ReportError prints the user-facing error line to w and logs the error with its context.
func ReportError(w io.Writer, logger *slog.Logger, err error) {
	fmt.Fprintf(w, "Error occured: %v\n", err)

	attrs := []any{"error", err}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		for k, v := range appErr.Context {
			attrs = append(attrs, k, v)
		}
	}
	logger.Error("run failed", attrs...)
}
