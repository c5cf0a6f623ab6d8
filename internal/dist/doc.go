// Package dist implements the one-dimensional Gaussian probability model.
//
// The package provides:
//   - density evaluation (real and extended non-negative codomains)
//   - the induced probability distribution over the real line, with the
//     zero-variance case represented as an explicit point mass
//   - measurable-set probabilities, CDF/quantile helpers, and sampling
//   - a quadrature-checked normalization invariant (total mass 1)
//
// Built on gonum.org/v1/gonum for scientific computing:
//   - Gauss-Legendre quadrature (integrate/quad)
//   - IEEE 754 floating-point accuracy
//
// Distributions are immutable values, fully determined by (mean, variance),
// and safe for concurrent use. Sampling takes an explicit rand.Source owned
// by the caller.
//
// Example Usage:
//
//	d, err := dist.New(0, 1)
//	if err != nil { ... }
//	p := d.Prob(dist.Interval{Lo: -1, Hi: 1}) // ≈ 0.6827
package dist
