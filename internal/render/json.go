package render

import (
	"encoding/json"
	"io"

	"tsgrowth/internal/growth"
	"tsgrowth/internal/model"
)

// JSONRenderer writes one indented object holding the rows and the summary.
type JSONRenderer struct{}

func (JSONRenderer) Format() string { return "json" }

type jsonDocument struct {
	Rows    model.FlaggedSeries `json:"rows"`
	Summary growth.Summary      `json:"summary"`
}

func (JSONRenderer) Render(w io.Writer, fs model.FlaggedSeries, sum growth.Summary) error {
	if fs == nil {
		fs = model.FlaggedSeries{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{Rows: fs, Summary: sum})
}
