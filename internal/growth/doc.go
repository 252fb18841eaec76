// Package growth derives growth flags from a series and reduces them to a growth share.
//
// A row is flagged as growth when its value is strictly greater than the value of the
// previous row. The first row has no previous value and is never flagged; equal
// consecutive values are not growth either.
//
//	s, _ := series.Generate(10, &seed)
//	fs, err := growth.DeriveGrowthFlag(s, model.ColValue)
//	share, err := growth.CalcGrowthShare(fs)
package growth
