package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"tsgrowth/internal/growth"
	"tsgrowth/internal/model"
)

// TableRenderer prints aligned columns followed by the growth share line.
type TableRenderer struct{}

func (TableRenderer) Format() string { return "table" }

func (TableRenderer) Render(w io.Writer, fs model.FlaggedSeries, sum growth.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s\t\n", model.ColTime, model.ColValue, model.ColDiff, model.ColGrowthFlag)
	for i, p := range fs {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t\n", i, p.Time, valueStr(p.Value), diffStr(p), p.GrowthFlag)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", ShareLine(sum.Share))
	return err
}

// valueStr keeps integral values free of a decimal point.
func valueStr(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return floatStr(v)
}
