package sampler

import "gonum.org/v1/gonum/stat/distuv"

type normal struct {
	dist distuv.Normal
}

func newNormal(mu, sigma float64, seed uint64) *normal {
	return &normal{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   newMT(seed),
		},
	}
}

func (n *normal) Draw() float64 { return n.dist.Rand() }
