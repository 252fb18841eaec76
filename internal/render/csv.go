package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"tsgrowth/internal/growth"
	"tsgrowth/internal/model"
)

// CSVRenderer writes rows as CSV (header: time,value,diff,growth_flag).
// The undefined first diff is an empty field. The summary is not part of the output.
type CSVRenderer struct{}

func (CSVRenderer) Format() string { return "csv" }

func (CSVRenderer) Render(w io.Writer, fs model.FlaggedSeries, _ growth.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{model.ColTime, model.ColValue, model.ColDiff, model.ColGrowthFlag}); err != nil {
		return err
	}
	for _, p := range fs {
		diff := ""
		if p.HasDiff {
			diff = floatStr(p.Diff)
		}
		if err := cw.Write([]string{
			strconv.Itoa(p.Time),
			floatStr(p.Value),
			diff,
			strconv.Itoa(p.GrowthFlag),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
