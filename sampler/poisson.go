package sampler

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

type poisson struct {
	dist distuv.Poisson
}

func newPoisson(lambda float64, seed uint64) *poisson {
	return &poisson{
		dist: distuv.Poisson{
			Lambda: lambda,
			Src:    newMT(seed),
		},
	}
}

func (p *poisson) Draw() float64 { return poissonRand(&p.dist) }

// poissonRand draws a count from dist, treating a non-positive rate
// as a point mass at zero rather than an error
func poissonRand(dist *distuv.Poisson) float64 {
	if dist.Lambda <= 0 {
		return 0
	}
	return dist.Rand()
}

// poissonOnce draws a single count with rate lambda from src without
// retaining the distribution. Used by the mixture families, which
// re-parameterize the Poisson stage on every draw while pulling from
// the lane's shared source.
func poissonOnce(lambda float64, src rand.Source) float64 {
	return poissonRand(&distuv.Poisson{Lambda: lambda, Src: src})
}
