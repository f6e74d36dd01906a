// Package bigmath provides the few arbitrary-precision transcendental
// kernels needed by the precise extremum path: π and the arctangent, both
// on math/big Floats at a caller-chosen mantissa precision.
package bigmath

import "math/big"

// guardBits is extra working precision carried through intermediate
// computation so the final rounding is accurate to the requested precision.
const guardBits = 32

// Pi returns π at the given mantissa precision in bits, computed with
// Machin's formula π = 16·arctan(1/5) − 4·arctan(1/239).
func Pi(prec uint) *big.Float {
	wp := prec + guardBits

	atan5 := Atan(newQuo(1, 5, wp), wp)
	atan239 := Atan(newQuo(1, 239, wp), wp)

	pi := new(big.Float).SetPrec(wp)
	pi.Mul(atan5, big.NewFloat(16))
	atan239.Mul(atan239, big.NewFloat(4))
	pi.Sub(pi, atan239)

	return pi.SetPrec(prec)
}

// Atan returns arctan(x) at the given mantissa precision in bits. The
// argument is first brought into (-0.1, 0.1) by repeated halving via
//
//	arctan(x) = 2·arctan(x / (1 + √(1+x²)))
//
// which is valid for all real x, and the Taylor series is then summed until
// the terms drop below the working precision.
func Atan(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits

	y := new(big.Float).SetPrec(wp).Set(x)
	one := big.NewFloat(1).SetPrec(wp)
	tenth := newQuo(1, 10, wp)

	var halvings uint
	t := new(big.Float).SetPrec(wp)
	for abs(y).Cmp(tenth) > 0 {
		// y ← y / (1 + sqrt(1 + y²))
		t.Mul(y, y)
		t.Add(t, one)
		t.Sqrt(t)
		t.Add(t, one)
		y.Quo(y, t)
		halvings++
	}

	// Taylor series: arctan(y) = y - y³/3 + y⁵/5 - ...
	y2 := new(big.Float).SetPrec(wp).Mul(y, y)
	term := new(big.Float).SetPrec(wp).Set(y)
	sum := new(big.Float).SetPrec(wp)
	quot := new(big.Float).SetPrec(wp)

	for n := int64(1); ; n += 2 {
		quot.Quo(term, new(big.Float).SetInt64(n))
		sum.Add(sum, quot)

		term.Mul(term, y2)
		term.Neg(term)
		if term.Sign() == 0 || term.MantExp(nil) < -int(wp) {
			break
		}
	}

	sum.SetMantExp(sum, int(halvings))
	return sum.SetPrec(prec)
}

// PrecForDigits returns the mantissa precision in bits needed to carry the
// given number of decimal digits, with guard room for rounding.
func PrecForDigits(digits int) uint {
	// log2(10) ≈ 3.322
	return uint(digits)*10/3 + guardBits
}

func newQuo(num, den int64, prec uint) *big.Float {
	n := new(big.Float).SetPrec(prec).SetInt64(num)
	d := new(big.Float).SetPrec(prec).SetInt64(den)
	return n.Quo(n, d)
}

func abs(x *big.Float) *big.Float {
	return new(big.Float).Abs(x)
}
