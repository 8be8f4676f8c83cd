package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindMetadata(t *testing.T) {
	assert.Equal(t, 2, Uniform.Arity())
	assert.Equal(t, 2, Normal.Arity())
	assert.Equal(t, 2, Gamma.Arity())
	assert.Equal(t, 1, Exponential.Arity())
	assert.Equal(t, 1, Poisson.Arity())
	assert.Equal(t, 2, NegativeBinomial.Arity())
	assert.Equal(t, 2, GeneralizedNegativeBinomial.Arity())

	for _, k := range []Kind{Uniform, Normal, Gamma, Exponential} {
		assert.False(t, k.Discrete(), "%v should be continuous", k)
	}
	for _, k := range []Kind{Poisson, NegativeBinomial,
		GeneralizedNegativeBinomial} {
		assert.True(t, k.Discrete(), "%v should be count-valued", k)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	kinds := []Kind{Uniform, Normal, Gamma, Exponential, Poisson,
		NegativeBinomial, GeneralizedNegativeBinomial}
	params := [][2]float64{
		{0.0, 1.0}, // uniform low, high
		{2.5, 3.7}, // normal mu, sigma
		{2.5, 0.7}, // gamma alpha, beta
		{1.5, 0.0}, // exponential lambda
		{8.5, 0.0}, // poisson lambda
		{20, 0.4},  // negative binomial k, p
		{2.5, 0.1}, // generalized negative binomial mu, alpha
	}

	for i, k := range kinds {
		a := New(k, params[i][0], params[i][1], 42)
		b := New(k, params[i][0], params[i][1], 42)
		c := New(k, params[i][0], params[i][1], 43)

		same := true
		for j := 0; j < 25; j++ {
			av, bv, cv := a.Draw(), b.Draw(), c.Draw()
			assert.Equal(t, av, bv, "%v: same seed diverged at draw %d", k, j)
			if av != cv {
				same = false
			}
		}
		assert.False(t, same, "%v: different seeds produced equal draws", k)
	}
}

func TestUniformRange(t *testing.T) {
	gen := New(Uniform, 2.5, 3.7, 13)
	for i := 0; i < 1000; i++ {
		v := gen.Draw()
		require.GreaterOrEqual(t, v, 2.5)
		require.Less(t, v, 3.7)
	}
}

func TestUniformIntRange(t *testing.T) {
	gen := NewUniformInt(2, 5, 13)
	seen := make(map[float64]bool)
	for i := 0; i < 1000; i++ {
		v := gen.Draw()
		require.Equal(t, math.Trunc(v), v)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestGammaPointMass(t *testing.T) {
	for _, beta := range []float64{0.5, 1.0, 3.7} {
		gen := New(Gamma, 0, beta, 42)
		for i := 0; i < 100; i++ {
			require.Zero(t, gen.Draw())
		}
	}
}

func TestPoissonDrawsAreCounts(t *testing.T) {
	gen := New(Poisson, 8.5, 0, 42)
	for i := 0; i < 1000; i++ {
		v := gen.Draw()
		require.Equal(t, math.Trunc(v), v)
		require.GreaterOrEqual(t, v, 0.0)
	}
}

func TestPoissonZeroRate(t *testing.T) {
	gen := New(Poisson, 0, 0, 42)
	for i := 0; i < 100; i++ {
		require.Zero(t, gen.Draw())
	}
}

// TestGenNegBinomialCollapsesToPoisson checks that a dispersion of 0
// bypasses the gamma stage, so the draws match a Poisson with the
// same rate and seed exactly.
func TestGenNegBinomialCollapsesToPoisson(t *testing.T) {
	const mu, seed = 2.5, 42

	gnb := New(GeneralizedNegativeBinomial, mu, 0, seed)
	pois := New(Poisson, mu, 0, seed)

	for i := 0; i < 100; i++ {
		require.Equal(t, pois.Draw(), gnb.Draw(), "draw %d", i)
	}
}

// TestGenNegBinomialSharedState checks that the gamma and Poisson
// stages of the mixture pull from one generator per lane: restarting
// a lane reproduces its draws, and distinct lanes diverge.
func TestGenNegBinomialSharedState(t *testing.T) {
	a := New(GeneralizedNegativeBinomial, 2.5, 0.1, 7)
	b := New(GeneralizedNegativeBinomial, 2.5, 0.1, 7)
	c := New(GeneralizedNegativeBinomial, 2.5, 0.1, 8)

	same := true
	for i := 0; i < 50; i++ {
		av, bv, cv := a.Draw(), b.Draw(), c.Draw()
		require.Equal(t, av, bv)
		if av != cv {
			same = false
		}
	}
	assert.False(t, same)
}

func TestNegativeBinomialMean(t *testing.T) {
	const k, p = 20.0, 0.4
	const draws = 20000

	gen := New(NegativeBinomial, k, p, 42)

	var sum float64
	for i := 0; i < draws; i++ {
		v := gen.Draw()
		require.Equal(t, math.Trunc(v), v)
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}

	mean := sum / draws
	want := k * (1 - p) / p
	assert.InEpsilon(t, want, mean, 0.05)
}
