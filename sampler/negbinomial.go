package sampler

import (
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// negBinomial samples the standard negative binomial with failure
// limit k and success probability p, realized as a Poisson draw over a
// gamma-distributed mean: X ~ Poisson(Gamma(k, (1-p)/p)). Both stages
// pull from the lane's single bit generator.
type negBinomial struct {
	src   *prng.MT19937_64
	gamma distuv.Gamma
}

func newNegBinomial(k, p float64, seed uint64) *negBinomial {
	src := newMT(seed)
	return &negBinomial{
		src: src,
		gamma: distuv.Gamma{
			Alpha: k,
			Beta:  p / (1 - p),
			Src:   src,
		},
	}
}

func (n *negBinomial) Draw() float64 {
	return poissonOnce(n.gamma.Rand(), n.src)
}

// genNegBinomial samples the generalized negative binomial with mean
// mu and dispersion alpha via the mixture X ~ Poisson(Gamma(1/alpha,
// mu*alpha)). At alpha == 0 the mixture collapses exactly to
// Poisson(mu); the gamma stage is bypassed so the rate stays finite
// and the draw matches the limiting distribution.
type genNegBinomial struct {
	poisson bool
	mu      float64
	src     *prng.MT19937_64
	gamma   distuv.Gamma
}

func newGenNegBinomial(mu, alpha float64, seed uint64) *genNegBinomial {
	src := newMT(seed)
	g := &genNegBinomial{
		poisson: alpha == 0,
		mu:      mu,
		src:     src,
	}
	if !g.poisson {
		g.gamma = distuv.Gamma{
			Alpha: 1 / alpha,
			Beta:  1 / (mu * alpha),
			Src:   src,
		}
	}

	return g
}

func (g *genNegBinomial) Draw() float64 {
	lambda := g.mu
	if !g.poisson {
		lambda = g.gamma.Rand()
	}

	return poissonOnce(lambda, g.src)
}
