// Package extrema locates the stationary points of the one-dimensional
// Schwefel component function f(x) = -x·sin(√|x|).
//
// For x > 0 the stationary condition f'(x) = 0 reduces, with the
// substitution x = (z + kπ)², to the scalar fixed-point equation
//
//	z = -arctan((z + kπ)/2)
//
// where the branch index k selects the period of the tangent graph that
// contains the root. For every k ≥ 1 the map is a contraction and the
// unique fixed point z lies in (-π/2, 0); the extremum location and value
// then follow in closed form. Odd k gives a local minimum, even k a local
// maximum, and the extremum locations grow monotonically with k.
package extrema

import (
	"errors"
	"fmt"
	"math"

	"github.com/jvkersch/schwefel/fixedpoint"
	"github.com/jvkersch/schwefel/schwefel"
)

// ErrInvalidBranch is returned when the branch index is not a positive
// integer. The fixed-point derivation indexes periods of the tangent graph
// starting at k = 1; k = 0 degenerates to the trivial stationary point at
// the origin.
var ErrInvalidBranch = errors.New("branch index must be a positive integer")

// Extremum is a located stationary point of the component function.
type Extremum struct {
	K int     // Branch index
	Z float64 // Converged fixed point, in (-π/2, 0)
	X float64 // Extremum location, (Z + Kπ)²
	F float64 // Function value at X: (-1)^K · X · √(X/(4+X))
}

// BranchMap returns the contraction map z ↦ -arctan((z + kπ)/2) whose fixed
// point determines the k-th extremum.
func BranchMap(k int) fixedpoint.Map {
	kpi := float64(k) * math.Pi
	return func(z float64) float64 {
		return -math.Atan((z + kpi) / 2)
	}
}

// Solve locates the k-th extremum of the component function. A nil settings
// uses fixedpoint.DefaultSettings, which resolves the fixed point to full
// double precision. Solve is pure: repeated calls with the same arguments
// return identical results.
func Solve(k int, settings *fixedpoint.Settings) (Extremum, error) {
	if k < 1 {
		return Extremum{}, fmt.Errorf("extrema: k = %d: %w", k, ErrInvalidBranch)
	}

	res := fixedpoint.Solve(BranchMap(k), settings)

	kpi := float64(k) * math.Pi
	x := (res.Z + kpi) * (res.Z + kpi)
	f := x * math.Sqrt(x/(4+x))
	if k%2 == 1 {
		f = -f
	}

	return Extremum{K: k, Z: res.Z, X: x, F: f}, nil
}

// Residual returns |f'(x_ext)|, the magnitude of the component derivative at
// the located extremum. A converged result leaves a residual at the level of
// floating-point roundoff; the helper exists as a self-check that the point
// is a genuine stationary point.
func Residual(e Extremum) float64 {
	return math.Abs(schwefel.ComponentDeriv(e.X))
}

// Table locates the extrema for k = 1..kmax in order.
func Table(kmax int, settings *fixedpoint.Settings) ([]Extremum, error) {
	if kmax < 1 {
		return nil, fmt.Errorf("extrema: kmax = %d: %w", kmax, ErrInvalidBranch)
	}
	table := make([]Extremum, 0, kmax)
	for k := 1; k <= kmax; k++ {
		e, err := Solve(k, settings)
		if err != nil {
			return nil, err
		}
		table = append(table, e)
	}
	return table, nil
}

// GlobalBranch returns the largest odd branch index whose extremum location
// stays within the domain box [-bound, bound]. The extremum on that branch
// is the global minimum of the component function over the box; bound = 500
// selects k = 7. GlobalBranch returns 0 if no odd branch fits.
func GlobalBranch(bound float64) int {
	best := 0
	for k := 1; ; k += 2 {
		e, err := Solve(k, nil)
		if err != nil || e.X > bound {
			return best
		}
		best = k
	}
}

// GlobalMinimum returns the global minimizer and minimum value of the
// n-dimensional Schwefel function over the box |xᵢ| ≤ bound. The
// n-dimensional objective decomposes additively into n copies of the
// component function, so the minimizer places every coordinate at the
// component minimum.
func GlobalMinimum(n int, bound float64) ([]float64, float64, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("extrema: dimension %d out of range", n)
	}
	k := GlobalBranch(bound)
	if k == 0 {
		return nil, 0, fmt.Errorf("extrema: no odd branch inside [-%g, %g]", bound, bound)
	}
	e, err := Solve(k, nil)
	if err != nil {
		return nil, 0, err
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = e.X
	}
	return x, float64(n) * e.F, nil
}
