package model

// Column names exposed through Table.
const (
	ColTime       = "time"
	ColValue      = "value"
	ColDiff       = "diff"
	ColGrowthFlag = "growth_flag"
)

// Point is one observation of a series. Time is a 1-based index.
type Point struct {
	Time  int     `json:"time"`
	Value float64 `json:"value"`
}

// Series is an ordered sequence of points with Time = 1..Len().
type Series []Point

// Table is the read side shared by Series and FlaggedSeries: numeric columns looked up by name.
type Table interface {
	Len() int
	Columns() []string
	Column(name string) ([]float64, bool)
}

func (s Series) Len() int { return len(s) }

func (s Series) Columns() []string { return []string{ColTime, ColValue} }

// Column returns a fresh slice holding the named column, or false if the series has no such column.
func (s Series) Column(name string) ([]float64, bool) {
	var get func(Point) float64
	switch name {
	case ColTime:
		get = func(p Point) float64 { return float64(p.Time) }
	case ColValue:
		get = func(p Point) float64 { return p.Value }
	default:
		return nil, false
	}
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = get(p)
	}
	return out, true
}

// Copy returns a deep copy of the series.
func (s Series) Copy() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}
