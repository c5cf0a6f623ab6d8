package dist

import (
	"errors"
	"fmt"
	gomath "math"
	"math/rand"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrInvalidParameter is returned when a distribution is constructed with
// parameters outside its domain (negative, NaN, or infinite variance;
// NaN or infinite mean).
var ErrInvalidParameter = errors.New("invalid distribution parameter")

// log(2π), precomputed for the log-density.
const log2Pi = 1.8378770664093454836

// LogDensity evaluates the Gaussian log-density at x. For variance <= 0
// there is no Lebesgue density and the result is -Inf (the zero function
// in log space).
func LogDensity(mean, variance, x float64) float64 {
	if variance <= 0 {
		return gomath.Inf(-1)
	}
	d := x - mean
	return -0.5*(log2Pi+gomath.Log(variance)) - d*d/(2*variance)
}

// Density evaluates the Gaussian density at x:
//
//	(1 / sqrt(2π·variance)) · exp(−(x−mean)² / (2·variance))
//
// The exponent is formed in log space first, so extreme deviations
// saturate to 0 instead of producing NaN. Zero variance yields the
// identically-zero function: the density relative to Lebesgue measure
// collapses for a point mass.
func Density(mean, variance, x float64) float64 {
	return gomath.Exp(LogDensity(mean, variance, x))
}

// DensityExt evaluates the density in the extended non-negative reals.
// Finite inputs always yield a finite value equal to Density.
func DensityExt(mean, variance, x float64) ExtNonNeg {
	return Ext(Density(mean, variance, x))
}

// Distribution is a probability distribution over the real line induced by
// a (mean, variance) pair. Total mass is 1 for every valid parameter pair.
type Distribution interface {
	// Mean returns the distribution's mean.
	Mean() float64

	// Prob returns the probability of a measurable set, in [0, 1].
	Prob(s Set) float64

	// CDF returns P(X <= x).
	CDF(x float64) float64

	// Quantile returns the smallest x with CDF(x) >= p.
	// p outside [0, 1] is rejected with ErrInvalidParameter.
	Quantile(p float64) (float64, error)

	// Rand draws one sample. A nil source falls back to the shared
	// math/rand source.
	Rand(src rand.Source) float64

	// TotalMass recomputes the distribution's total probability. The
	// result must be 1 up to quadrature error; callers use it to check
	// the normalization invariant rather than assume it.
	TotalMass() float64

	// AbsolutelyContinuous reports whether the distribution is
	// absolutely continuous with respect to Lebesgue measure.
	AbsolutelyContinuous() bool

	// DominatesLebesgue reports whether Lebesgue measure is absolutely
	// continuous with respect to the distribution.
	DominatesLebesgue() bool
}

// New validates (mean, variance) and returns the induced distribution:
// a PointMass at mean when variance is zero, a Normal otherwise.
// Negative variance is rejected, never clamped.
func New(mean, variance float64) (Distribution, error) {
	if gomath.IsNaN(mean) || gomath.IsInf(mean, 0) {
		return nil, fmt.Errorf("%w: mean must be finite, got %v", ErrInvalidParameter, mean)
	}
	if gomath.IsNaN(variance) || gomath.IsInf(variance, 0) || variance < 0 {
		return nil, fmt.Errorf("%w: variance must be finite and non-negative, got %v", ErrInvalidParameter, variance)
	}
	if variance == 0 {
		return PointMass{At: mean}, nil
	}
	return Normal{Mu: mean, Variance: variance}, nil
}

// PointMass is the degenerate (Dirac) distribution: all mass at a single
// point. It is the variance-zero case of the Gaussian family.
type PointMass struct {
	At float64
}

var _ Distribution = PointMass{}

// Mean returns the atom.
func (p PointMass) Mean() float64 { return p.At }

// Prob is 1 when the set contains the atom, 0 otherwise.
func (p PointMass) Prob(s Set) float64 {
	if s.Contains(p.At) {
		return 1
	}
	return 0
}

// CDF is the step function jumping at the atom.
func (p PointMass) CDF(x float64) float64 {
	if x >= p.At {
		return 1
	}
	return 0
}

// Quantile returns the atom for every valid p.
func (p PointMass) Quantile(q float64) (float64, error) {
	if gomath.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: quantile level must be in [0,1], got %v", ErrInvalidParameter, q)
	}
	return p.At, nil
}

// Rand returns the atom; a point mass has no randomness.
func (p PointMass) Rand(_ rand.Source) float64 { return p.At }

// TotalMass is exactly 1.
func (p PointMass) TotalMass() float64 { return 1 }

// AbsolutelyContinuous is false: the atom is Lebesgue-null but carries
// full probability.
func (p PointMass) AbsolutelyContinuous() bool { return false }

// DominatesLebesgue is false: any interval missing the atom has positive
// length and zero probability.
func (p PointMass) DominatesLebesgue() bool { return false }

// Normal is the Gaussian distribution with strictly positive variance.
type Normal struct {
	Mu       float64
	Variance float64
}

var _ Distribution = Normal{}

// Mean returns μ.
func (n Normal) Mean() float64 { return n.Mu }

// StdDev returns the standard deviation.
func (n Normal) StdDev() float64 { return gomath.Sqrt(n.Variance) }

// Density evaluates the distribution's density at x.
func (n Normal) Density(x float64) float64 {
	return Density(n.Mu, n.Variance, x)
}

// RadonNikodym evaluates the Radon-Nikodym derivative of the distribution
// with respect to Lebesgue measure. It coincides with Density everywhere;
// any other derivative agrees with it outside a Lebesgue-null set.
func (n Normal) RadonNikodym(x float64) float64 {
	return n.Density(x)
}

// CDF returns P(X <= x), via erfc for accuracy in the tails.
func (n Normal) CDF(x float64) float64 {
	z := (x - n.Mu) / (n.StdDev() * gomath.Sqrt2)
	return 0.5 * gomath.Erfc(-z)
}

// Quantile returns the inverse CDF. p=0 and p=1 map to ∓Inf.
func (n Normal) Quantile(p float64) (float64, error) {
	if gomath.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: quantile level must be in [0,1], got %v", ErrInvalidParameter, p)
	}
	switch p {
	case 0:
		return gomath.Inf(-1), nil
	case 1:
		return gomath.Inf(1), nil
	}
	return n.Mu + n.StdDev()*gomath.Sqrt2*gomath.Erfinv(2*p-1), nil
}

// Rand draws one sample: σ·Z+μ with Z standard normal.
func (n Normal) Rand(src rand.Source) float64 {
	var z float64
	if src == nil {
		z = rand.NormFloat64()
	} else {
		z = rand.New(src).NormFloat64()
	}
	return z*n.StdDev() + n.Mu
}

// Prob returns the probability of s. Intervals use the CDF difference;
// Lebesgue-null sets have probability zero by absolute continuity; other
// set shapes fall back to quadrature of the density restricted to s.
func (n Normal) Prob(s Set) float64 {
	switch s := s.(type) {
	case Interval:
		if s.LebesgueNull() {
			return 0
		}
		return clampUnit(n.CDF(s.Hi) - n.CDF(s.Lo))
	case Points:
		return 0
	case Union:
		var total float64
		for _, part := range s {
			total += n.Prob(part)
		}
		return clampUnit(total)
	default:
		if s.LebesgueNull() {
			return 0
		}
		return clampUnit(n.integrate(func(x float64) float64 {
			if !s.Contains(x) {
				return 0
			}
			return n.Density(x)
		}, DefaultQuadrature()))
	}
}

// TotalMass integrates the density over the real line with the default
// quadrature settings.
func (n Normal) TotalMass() float64 {
	return n.TotalMassOpts(DefaultQuadrature())
}

// TotalMassOpts integrates the density over the real line: Gauss-Legendre
// quadrature over a central ±TailSigmas·σ window, plus the exact erfc mass
// of both tails.
func (n Normal) TotalMassOpts(q Quadrature) float64 {
	q = q.orDefault()
	central := n.integrate(n.Density, q)
	lo := n.Mu - q.TailSigmas*n.StdDev()
	hi := n.Mu + q.TailSigmas*n.StdDev()
	tails := n.CDF(lo) + (1 - n.CDF(hi))
	return central + tails
}

// AbsolutelyContinuous is true: Lebesgue-null sets get zero probability.
func (n Normal) AbsolutelyContinuous() bool { return true }

// DominatesLebesgue is true: the density is strictly positive and finite
// everywhere, so zero-probability sets are Lebesgue-null.
func (n Normal) DominatesLebesgue() bool { return true }

// Quadrature controls the numeric integration backing TotalMass and the
// generic-set fallback of Prob.
type Quadrature struct {
	// Nodes is the number of Gauss-Legendre evaluation points.
	Nodes int
	// TailSigmas is the half-width of the central window in standard
	// deviations; mass outside it is accounted for via erfc.
	TailSigmas float64
}

// DefaultQuadrature returns settings accurate to well below 1e-9 for the
// normalization check.
func DefaultQuadrature() Quadrature {
	return Quadrature{Nodes: 160, TailSigmas: 12}
}

// orDefault fills unset fields from DefaultQuadrature.
func (q Quadrature) orDefault() Quadrature {
	if q.Nodes <= 0 {
		q.Nodes = DefaultQuadrature().Nodes
	}
	if q.TailSigmas <= 0 {
		q.TailSigmas = DefaultQuadrature().TailSigmas
	}
	return q
}

func (n Normal) integrate(f func(float64) float64, q Quadrature) float64 {
	q = q.orDefault()
	lo := n.Mu - q.TailSigmas*n.StdDev()
	hi := n.Mu + q.TailSigmas*n.StdDev()
	return quad.Fixed(f, lo, hi, q.Nodes, nil, 0)
}

func clampUnit(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
