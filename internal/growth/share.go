package growth

import (
	"tsgrowth/internal/apperr"
	"tsgrowth/internal/model"
)

// CalcGrowthShare returns the mean of the growth_flag column, a value in [0, 1].
func CalcGrowthShare(t model.Table) (float64, error) {
	flags, ok := t.Column(model.ColGrowthFlag)
	if !ok {
		return 0, apperr.MissingColumn(model.ColGrowthFlag)
	}
	if len(flags) == 0 {
		return 0, apperr.EmptyInput("growth share")
	}
	sum := 0.0
	for _, f := range flags {
		sum += f
	}
	return sum / float64(len(flags)), nil
}

// Summary describes a flagged series.
type Summary struct {
	Rows   int     `json:"rows"`
	Growth int     `json:"growth"`
	Share  float64 `json:"growth_share"`
}

// Summarize counts growth rows and computes the growth share.
func Summarize(fs model.FlaggedSeries) (Summary, error) {
	share, err := CalcGrowthShare(fs)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Rows: fs.Len(), Share: share}
	for _, f := range fs.Flags() {
		sum.Growth += f
	}
	return sum, nil
}
