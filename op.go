// Package gosample provides Gorgonia operations for concurrent
// sampling from batches of parameterized probability distributions.
//
// Every operation follows the same shape contract. Let [s] be the
// shape of the parameter tensors, n the dimension of [s], [t] the
// extra sample shape given to the operation, and m the dimension of
// [t]. The output is an (n+m)-dimensional tensor with shape [s]x[t]:
// for any valid n-dimensional index i into the parameters, output[i]
// is an m-dimensional block of independent draws from the
// distribution parameterized by the values at index i. With no extra
// shape, one draw is made per distribution and the output has the
// shape [s].
//
// Sampling is not differentiable; the gradient of every operation
// with respect to every input is zero.
package gosample

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gosample/sampler"
	G "gorgonia.org/gorgonia"
)

// Uniform samples concurrently from multiple uniform distributions on
// the intervals given by [low, high). For floating point dtypes draws
// are continuous on the interval; for the Int dtype draws are uniform
// over the integers in the interval. The behaviour when low > high is
// undefined.
//
// Example:
//
//	low  = [ 0.0, 2.5 ]
//	high = [ 1.0, 3.7 ]
//
//	// Draw a single sample for each distribution
//	Uniform(low, high, res) = [ 0.40451524, 3.18687344 ]
//
//	// Draw a vector containing two samples for each distribution
//	Uniform(low, high, res, 2) = [[ 0.40451524, 0.18017688 ],
//	                              [ 3.18687344, 3.68352246 ]]
func Uniform(low, high *G.Node, resource sampler.Resource,
	shape ...int) (*G.Node, error) {
	return applySample(sampler.Uniform, resource, shape, low, high)
}

// Normal samples concurrently from multiple normal distributions with
// means mu and standard deviations sigma. The behaviour when sigma is
// negative is undefined.
func Normal(mu, sigma *G.Node, resource sampler.Resource,
	shape ...int) (*G.Node, error) {
	return applySample(sampler.Normal, resource, shape, mu, sigma)
}

// Gamma samples concurrently from multiple gamma distributions with
// shape parameters alpha and scale parameters beta. An alpha of 0
// denotes the degenerate point mass at 0: every draw is 0 regardless
// of beta.
func Gamma(alpha, beta *G.Node, resource sampler.Resource,
	shape ...int) (*G.Node, error) {
	return applySample(sampler.Gamma, resource, shape, alpha, beta)
}

// Exponential samples concurrently from multiple exponential
// distributions with rate parameters lam.
func Exponential(lam *G.Node, resource sampler.Resource,
	shape ...int) (*G.Node, error) {
	return applySample(sampler.Exponential, resource, shape, lam)
}

// Poisson samples concurrently from multiple Poisson distributions
// with rate parameters lam. Samples are always returned in a floating
// point dtype, with each count exactly representable.
//
// Example:
//
//	lam = [ 1.0, 8.5 ]
//
//	// Draw a single sample for each distribution
//	Poisson(lam, res) = [ 0., 13. ]
//
//	// Draw a vector containing two samples for each distribution
//	Poisson(lam, res, 2) = [[  0., 4. ],
//	                        [ 13., 8. ]]
func Poisson(lam *G.Node, resource sampler.Resource,
	shape ...int) (*G.Node, error) {
	return applySample(sampler.Poisson, resource, shape, lam)
}

// NegativeBinomial samples concurrently from multiple negative
// binomial distributions with failure limits k and success
// probabilities p, as defined by the C++ standard library. Samples
// are always returned in a floating point dtype.
func NegativeBinomial(k, p *G.Node, resource sampler.Resource,
	shape ...int) (*G.Node, error) {
	return applySample(sampler.NegativeBinomial, resource, shape, k, p)
}

// GeneralizedNegativeBinomial samples concurrently from multiple
// generalized negative binomial distributions with means mu and
// dispersions alpha, generated by a Poisson-gamma mixture:
// X ~ Poisson(Gamma(1/alpha, mu*alpha)). A dispersion of 0 denotes
// the limiting Poisson(mu) distribution and is sampled as such.
// Samples are always returned in a floating point dtype.
func GeneralizedNegativeBinomial(mu, alpha *G.Node,
	resource sampler.Resource, shape ...int) (*G.Node, error) {
	return applySample(sampler.GeneralizedNegativeBinomial, resource, shape,
		mu, alpha)
}

// applySample validates the parameter nodes and applies a sampling op
// for the family kind to them
func applySample(kind sampler.Kind, resource sampler.Resource, shape []int,
	params ...*G.Node) (*G.Node, error) {
	name := fmt.Sprintf("sample%v", kind)

	if len(params) != kind.Arity() {
		return nil, fmt.Errorf("%v: expected %d parameters, got %d", name,
			kind.Arity(), len(params))
	}

	for i, param := range params {
		if param == nil {
			return nil, fmt.Errorf("%v: nil parameter %d", name, i)
		}
		if !param.Shape().Eq(params[0].Shape()) {
			return nil, fmt.Errorf("%v: expected parameters to have the "+
				"same shape but got %v and %v", name, params[0].Shape(),
				param.Shape())
		}
		if param.Dtype() != params[0].Dtype() {
			return nil, fmt.Errorf("%v: expected parameters to have the "+
				"same dtype but got %v and %v", name, params[0].Dtype(),
				param.Dtype())
		}
	}

	op, err := newMultiSampleOp(kind, resource, params[0].Shape(),
		params[0].Dtype(), shape...)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	return G.ApplyOp(op, params...)
}
