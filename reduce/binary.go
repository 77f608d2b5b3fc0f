// Package reduce turns a weighted reliability instance into an equivalent
// unweighted one, where every edge is present with probability exactly ½.
// Each weighted edge is first expanded into a truncated binary fraction and
// then realized as a small gadget of probability-½ edges.
package reduce

import (
	"math"

	"github.com/pkg/errors"
)

// Defaults used by ToUnweighted when binarizing survival probabilities.
const (
	DefaultMinBits = 10
	DefaultMaxBits = 20
	DefaultRelTol  = 1e-2
)

// FloatToBin greedily expands p into a binary fraction, most significant bit
// first, so that BinToFloat of the result approximates p from below. After
// minBits bits the expansion stops as soon as the complement of the
// accumulated value is within relative tolerance relTol of 1-p; it always
// stops at maxBits (truncation, never rounding). p must lie strictly between
// 0 and 1.
func FloatToBin(p float64, minBits, maxBits int, relTol float64) ([]bool, error) {
	if p <= 0 || p >= 1 {
		return nil, errors.Errorf("probability %v outside the open interval (0, 1)", p)
	}
	var bits []bool
	rem := p
	for i := 1; rem != 0 && i <= maxBits; i++ {
		if i > minBits && closeRel(1-BinToFloat(bits), 1-p, relTol) {
			break
		}
		w := math.Ldexp(1, -i)
		if rem >= w {
			bits = append(bits, true)
			rem -= w
		} else {
			bits = append(bits, false)
		}
	}
	return bits, nil
}

// BinToFloat evaluates a bit sequence as Σ bits[i]·2^-(i+1). It is exact and
// never fails; the empty sequence evaluates to 0.
func BinToFloat(bits []bool) float64 {
	p := 0.0
	for i, b := range bits {
		if b {
			p += math.Ldexp(1, -(i + 1))
		}
	}
	return p
}

// closeRel mirrors numpy.isclose with a zero absolute tolerance.
func closeRel(a, b, rtol float64) bool {
	return math.Abs(a-b) <= rtol*math.Abs(b)
}
