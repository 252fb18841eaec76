// Package render writes a flagged series and its growth summary to a console stream.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tsgrowth/internal/growth"
	"tsgrowth/internal/model"
)

// Renderer writes a flagged series with its summary in one output format.
// The caller picks an implementation by name; run code depends only on this interface.
type Renderer interface {
	Render(w io.Writer, fs model.FlaggedSeries, sum growth.Summary) error
	Format() string
}

// Formats lists the names accepted by NewRenderer.
var Formats = []string{"table", "csv", "json"}

// NewRenderer creates an implementation by format (table, csv, json).
// Returns nil if format not supported.
func NewRenderer(format string) Renderer {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table", "":
		return TableRenderer{}
	case "csv":
		return CSVRenderer{}
	case "json":
		return JSONRenderer{}
	default:
		return nil
	}
}

// ShareLine formats the growth share as a percentage with two decimals.
func ShareLine(share float64) string {
	return fmt.Sprintf("Growth share: %.2f%%", share*100)
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func diffStr(p model.FlaggedPoint) string {
	if !p.HasDiff {
		return "NaN"
	}
	return floatStr(p.Diff)
}
