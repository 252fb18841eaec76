// Package series synthesizes time series for growth analysis.
package series

import (
	"fmt"
	"math/rand/v2"

	"tsgrowth/internal/apperr"
	"tsgrowth/internal/model"
)

// Generated values are uniform integers in [MinValue, MaxValue).
const (
	MinValue = 50
	MaxValue = 150
)

// Generator owns its random source. It is not safe for concurrent use.
type Generator struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed, or from entropy when seed is nil.
func NewGenerator(seed *int64) *Generator {
	src := rand.NewPCG(rand.Uint64(), rand.Uint64())
	if seed != nil {
		src.Seed(seedWords(*seed))
	}
	return &Generator{src: src, rng: rand.New(src)}
}

// Generate returns nPoints values with Time = 1..nPoints.
// A non-nil seed resets the source first, so equal (nPoints, seed) give equal series;
// otherwise the generator's stream keeps advancing across calls.
func (g *Generator) Generate(nPoints int, seed *int64) (s model.Series, err error) {
	if nPoints <= 0 {
		return nil, apperr.InvalidArgument("n_points", nPoints, "a positive integer")
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = apperr.Generation(fmt.Errorf("%v", r)).WithContext("n_points", nPoints)
		}
	}()

	if seed != nil {
		g.src.Seed(seedWords(*seed))
	}
	s = make(model.Series, nPoints)
	for i := range s {
		s[i] = model.Point{
			Time:  i + 1,
			Value: float64(MinValue + g.rng.IntN(MaxValue-MinValue)),
		}
	}
	return s, nil
}

// Generate is a convenience wrapper around a fresh Generator.
func Generate(nPoints int, seed *int64) (model.Series, error) {
	return NewGenerator(seed).Generate(nPoints, seed)
}

func seedWords(seed int64) (uint64, uint64) {
	u := uint64(seed)
	return u, u ^ 0x9e3779b97f4a7c15
}
