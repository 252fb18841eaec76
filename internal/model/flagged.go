package model

import (
	"encoding/json"
	"math"
)

// FlaggedPoint is a Point with its first difference and growth flag.
// HasDiff is false on the first row, where the difference is undefined.
type FlaggedPoint struct {
	Point
	Diff       float64
	HasDiff    bool
	GrowthFlag int
}

type flaggedPointJSON struct {
	Time       int      `json:"time"`
	Value      float64  `json:"value"`
	Diff       *float64 `json:"diff"`
	GrowthFlag int      `json:"growth_flag"`
}

// MarshalJSON writes an undefined diff as null.
func (p FlaggedPoint) MarshalJSON() ([]byte, error) {
	out := flaggedPointJSON{Time: p.Time, Value: p.Value, GrowthFlag: p.GrowthFlag}
	if p.HasDiff {
		d := p.Diff
		out.Diff = &d
	}
	return json.Marshal(out)
}

// FlaggedSeries is a Series extended with the diff and growth_flag columns.
type FlaggedSeries []FlaggedPoint

func (fs FlaggedSeries) Len() int { return len(fs) }

func (fs FlaggedSeries) Columns() []string {
	return []string{ColTime, ColValue, ColDiff, ColGrowthFlag}
}

// Column returns a fresh slice holding the named column. Undefined diffs are NaN.
func (fs FlaggedSeries) Column(name string) ([]float64, bool) {
	var get func(FlaggedPoint) float64
	switch name {
	case ColTime:
		get = func(p FlaggedPoint) float64 { return float64(p.Time) }
	case ColValue:
		get = func(p FlaggedPoint) float64 { return p.Value }
	case ColDiff:
		get = func(p FlaggedPoint) float64 {
			if !p.HasDiff {
				return math.NaN()
			}
			return p.Diff
		}
	case ColGrowthFlag:
		get = func(p FlaggedPoint) float64 { return float64(p.GrowthFlag) }
	default:
		return nil, false
	}
	out := make([]float64, len(fs))
	for i, p := range fs {
		out[i] = get(p)
	}
	return out, true
}

// Base returns the underlying plain series (time, value).
func (fs FlaggedSeries) Base() Series {
	out := make(Series, len(fs))
	for i, p := range fs {
		out[i] = p.Point
	}
	return out
}

// Flags returns the growth_flag column as ints.
func (fs FlaggedSeries) Flags() []int {
	out := make([]int, len(fs))
	for i, p := range fs {
		out[i] = p.GrowthFlag
	}
	return out
}
