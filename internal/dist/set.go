package dist

import gomath "math"

// Set is a measurable subset of the real line. The representations below
// cover the sets the probability surface works with: intervals (possibly
// unbounded), finite point sets, and finite unions of either.
type Set interface {
	// Contains reports whether x is a member of the set.
	Contains(x float64) bool

	// LebesgueNull reports whether the set has Lebesgue measure zero.
	LebesgueNull() bool
}

// Interval is the closed interval [Lo, Hi]. Either endpoint may be
// infinite. An interval with Lo >= Hi carries no length.
type Interval struct {
	Lo float64
	Hi float64
}

// RealLine is the whole real line.
var RealLine = Interval{Lo: gomath.Inf(-1), Hi: gomath.Inf(1)}

// Empty is the empty set.
var Empty = Interval{Lo: gomath.Inf(1), Hi: gomath.Inf(-1)}

// Contains reports membership, endpoints included.
func (i Interval) Contains(x float64) bool {
	return x >= i.Lo && x <= i.Hi
}

// LebesgueNull reports whether the interval is degenerate (a single point
// or empty).
func (i Interval) LebesgueNull() bool {
	return i.Lo >= i.Hi
}

// Points is a finite set of real numbers. Always Lebesgue-null.
type Points []float64

// Contains reports membership.
func (p Points) Contains(x float64) bool {
	for _, v := range p {
		if v == x {
			return true
		}
	}
	return false
}

// LebesgueNull always reports true: finite sets have measure zero.
func (p Points) LebesgueNull() bool {
	return true
}

// Union is a finite union of sets. Probability computations assume the
// components are pairwise disjoint.
type Union []Set

// Contains reports membership in any component.
func (u Union) Contains(x float64) bool {
	for _, s := range u {
		if s.Contains(x) {
			return true
		}
	}
	return false
}

// LebesgueNull reports whether every component is Lebesgue-null.
func (u Union) LebesgueNull() bool {
	for _, s := range u {
		if !s.LebesgueNull() {
			return false
		}
	}
	return true
}
