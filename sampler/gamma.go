package sampler

import "gonum.org/v1/gonum/stat/distuv"

// gamma samples with shape alpha and scale beta. distuv parameterizes
// the gamma distribution by rate, so the scale is inverted once at
// construction.
type gamma struct {
	dist distuv.Gamma
}

func newGamma(alpha, beta float64, seed uint64) Generator {
	// alpha == 0 is a point mass at zero, which distuv rejects
	if alpha == 0 {
		return constant(0)
	}

	return &gamma{
		dist: distuv.Gamma{
			Alpha: alpha,
			Beta:  1 / beta,
			Src:   newMT(seed),
		},
	}
}

func (g *gamma) Draw() float64 { return g.dist.Rand() }

// constant is a degenerate point-mass generator
type constant float64

func (c constant) Draw() float64 { return float64(c) }
