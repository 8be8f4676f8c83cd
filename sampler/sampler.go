// Package sampler provides seedable generators for batched sampling
// from parameterized probability distributions
package sampler

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// Kind identifies a distribution family
type Kind int

const (
	Uniform Kind = iota
	Normal
	Gamma
	Exponential
	Poisson
	NegativeBinomial
	GeneralizedNegativeBinomial
)

// Generator draws values from a single parameterized distribution
// instance. A Generator is constructed once per lane and is not safe
// for concurrent use.
type Generator interface {
	Draw() float64
}

// Arity returns the number of parameter arrays the family consumes
func (k Kind) Arity() int {
	switch k {
	case Exponential, Poisson:
		return 1
	default:
		return 2
	}
}

// Discrete returns whether the family produces count-valued draws.
// Count-valued families always sample to a floating point output,
// regardless of the parameter dtype.
func (k Kind) Discrete() bool {
	switch k {
	case Poisson, NegativeBinomial, GeneralizedNegativeBinomial:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case Uniform:
		return "Uniform"
	case Normal:
		return "Normal"
	case Gamma:
		return "Gamma"
	case Exponential:
		return "Exponential"
	case Poisson:
		return "Poisson"
	case NegativeBinomial:
		return "NegativeBinomial"
	case GeneralizedNegativeBinomial:
		return "GeneralizedNegativeBinomial"
	default:
		return "Unknown"
	}
}

// New constructs a generator for one lane of the distribution family
// k, parameterized by p1 and p2. Single-parameter families ignore p2.
// Generators with the same parameters and seed produce identical draw
// sequences.
func New(k Kind, p1, p2 float64, seed uint64) Generator {
	switch k {
	case Uniform:
		return newUniform(p1, p2, seed)
	case Normal:
		return newNormal(p1, p2, seed)
	case Gamma:
		return newGamma(p1, p2, seed)
	case Exponential:
		return newExponential(p1, seed)
	case Poisson:
		return newPoisson(p1, seed)
	case NegativeBinomial:
		return newNegBinomial(p1, p2, seed)
	case GeneralizedNegativeBinomial:
		return newGenNegBinomial(p1, p2, seed)
	default:
		panic("sampler: unknown distribution family")
	}
}

// newMT returns a Mersenne Twister bit generator seeded for one lane
func newMT(seed uint64) *prng.MT19937_64 {
	mt := prng.NewMT19937_64()
	mt.Seed(seed)
	return mt
}
