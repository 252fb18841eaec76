package growth

import (
	"tsgrowth/internal/apperr"
	"tsgrowth/internal/model"
)

// DeriveGrowthFlag returns a copy of t with diff and growth_flag computed over column.
// t must expose the time and value columns as well as column itself.
func DeriveGrowthFlag(t model.Table, column string) (model.FlaggedSeries, error) {
	x, ok := t.Column(column)
	if !ok {
		return nil, apperr.MissingColumn(column)
	}
	times, ok := t.Column(model.ColTime)
	if !ok {
		return nil, apperr.MissingColumn(model.ColTime)
	}
	values, ok := t.Column(model.ColValue)
	if !ok {
		return nil, apperr.MissingColumn(model.ColValue)
	}

	out := make(model.FlaggedSeries, len(x))
	for i := range x {
		fp := model.FlaggedPoint{
			Point: model.Point{Time: int(times[i]), Value: values[i]},
		}
		if i > 0 {
			fp.Diff = x[i] - x[i-1]
			fp.HasDiff = true
			if fp.Diff > 0 {
				fp.GrowthFlag = 1
			}
		}
		out[i] = fp
	}
	return out, nil
}
