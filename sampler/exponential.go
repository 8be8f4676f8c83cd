package sampler

import "gonum.org/v1/gonum/stat/distuv"

type exponential struct {
	dist distuv.Exponential
}

func newExponential(lambda float64, seed uint64) *exponential {
	return &exponential{
		dist: distuv.Exponential{
			Rate: lambda,
			Src:  newMT(seed),
		},
	}
}

func (e *exponential) Draw() float64 { return e.dist.Rand() }
