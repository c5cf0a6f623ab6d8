package dist

import (
	gomath "math"
	"strconv"
)

// ExtNonNeg is a value in the extended non-negative reals [0, +inf].
// Integration machinery needs a codomain closed under suprema; this type
// is the density's value in that codomain. Construction clamps negatives
// and NaN to zero so the invariant v >= 0 always holds.
type ExtNonNeg struct {
	v float64
}

// ExtInf is the point at infinity.
var ExtInf = ExtNonNeg{v: gomath.Inf(1)}

// Ext converts a real number into the extended non-negative domain.
func Ext(x float64) ExtNonNeg {
	if gomath.IsNaN(x) || x < 0 {
		return ExtNonNeg{}
	}
	return ExtNonNeg{v: x}
}

// Value returns the underlying float64, +Inf when infinite.
func (e ExtNonNeg) Value() float64 {
	return e.v
}

// IsInf reports whether the value is the point at infinity.
func (e ExtNonNeg) IsInf() bool {
	return gomath.IsInf(e.v, 1)
}

// Add returns the extended sum. Anything plus infinity is infinity.
func (e ExtNonNeg) Add(other ExtNonNeg) ExtNonNeg {
	return ExtNonNeg{v: e.v + other.v}
}

func (e ExtNonNeg) String() string {
	if e.IsInf() {
		return "+inf"
	}
	return strconv.FormatFloat(e.v, 'g', -1, 64)
}
