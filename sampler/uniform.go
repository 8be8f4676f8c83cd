package sampler

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

type uniform struct {
	dist distuv.Uniform
}

func newUniform(low, high float64, seed uint64) *uniform {
	return &uniform{
		dist: distuv.Uniform{
			Min: low,
			Max: high,
			Src: newMT(seed),
		},
	}
}

func (u *uniform) Draw() float64 { return u.dist.Rand() }

// uniformInt draws from the closed-open integer range [low, high)
type uniformInt struct {
	low, span int64
	rnd       *rand.Rand
}

// NewUniformInt constructs a generator drawing uniformly from the
// integer range [low, high). Draws are integer-valued floats. Used in
// place of New when the uniform family samples to an integral dtype.
func NewUniformInt(low, high int64, seed uint64) Generator {
	return &uniformInt{
		low:  low,
		span: high - low,
		rnd:  rand.New(newMT(seed)),
	}
}

func (u *uniformInt) Draw() float64 {
	if u.span <= 0 {
		return float64(u.low)
	}
	return float64(u.low + u.rnd.Int63n(u.span))
}
