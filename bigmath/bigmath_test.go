package bigmath

import (
	"math"
	"math/big"
	"strings"
	"testing"
)

const pi52 = "3.1415926535897932384626433832795028841971693993751058"

func TestPi(t *testing.T) {
	pi := Pi(PrecForDigits(60))
	if got := pi.Text('f', 52); got != pi52 {
		t.Errorf("Pi = %s\nwant %s", got, pi52)
	}
}

func TestPiFloat64(t *testing.T) {
	pi := Pi(53)
	got, _ := pi.Float64()
	if got != math.Pi {
		t.Errorf("Pi at double precision = %v, want math.Pi = %v", got, math.Pi)
	}
}

func TestAtanAgainstMath(t *testing.T) {
	for _, x := range []float64{0, 0.05, -0.05, 0.5, 1, 2, -3, 10.3, -250} {
		got, _ := Atan(big.NewFloat(x), 64).Float64()
		want := math.Atan(x)
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("Atan(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestAtanOne(t *testing.T) {
	// arctan(1) = π/4, checked at 50 digits.
	prec := PrecForDigits(55)

	got := Atan(big.NewFloat(1).SetPrec(prec), prec)
	want := Pi(prec)
	want.Quo(want, big.NewFloat(4))

	diff := new(big.Float).Sub(got, want)
	diff.Abs(diff)
	if diff.Cmp(new(big.Float).SetFloat64(1e-50)) > 0 {
		t.Errorf("Atan(1) differs from π/4 by %s", diff.Text('e', 3))
	}
}

func TestAtanOdd(t *testing.T) {
	prec := PrecForDigits(40)
	x := new(big.Float).SetPrec(prec).SetFloat64(7.25)

	pos := Atan(x, prec)
	neg := Atan(new(big.Float).Neg(x), prec)
	neg.Neg(neg)

	if pos.Cmp(neg) != 0 {
		t.Errorf("Atan is not odd: %s vs %s", pos.Text('g', 45), neg.Text('g', 45))
	}
}

func TestAtanZero(t *testing.T) {
	got := Atan(new(big.Float), 64)
	if got.Sign() != 0 {
		t.Errorf("Atan(0) = %s, want 0", got.Text('g', 20))
	}
}

func TestPrecForDigits(t *testing.T) {
	// 50 decimal digits need at least 50·log2(10) ≈ 167 bits.
	if got := PrecForDigits(50); got < 167 {
		t.Errorf("PrecForDigits(50) = %d, too small", got)
	}
	if got := Pi(PrecForDigits(50)).Text('f', 50); !strings.HasPrefix(pi52, got[:len(got)-1]) {
		t.Errorf("π at PrecForDigits(50) drifts before digit 50: %s", got)
	}
}
