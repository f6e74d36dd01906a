// Package schwefel implements the Schwefel benchmark objective
//
//	F(x) = -Σ xᵢ·sin(√|xᵢ|)
//
// over the standard box |xᵢ| ≤ 500, together with its one-dimensional
// component function and derivative. The function is a common stress test
// for optimization algorithms: it has many local minima and its global
// minimum sits close to the domain boundary.
package schwefel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bound is the half-width of the standard benchmark domain box.
const Bound = 500

// Component evaluates the one-dimensional component function
// f(x) = -x·sin(√|x|).
func Component(x float64) float64 {
	return -x * math.Sin(math.Sqrt(math.Abs(x)))
}

// ComponentDeriv evaluates f'(x). The component function is odd, so its
// derivative is even:
//
//	f'(x) = -sin(√|x|) - (√|x|/2)·cos(√|x|)
//
// with f'(0) = 0.
func ComponentDeriv(x float64) float64 {
	if x == 0 {
		return 0
	}
	r := math.Sqrt(math.Abs(x))
	return -math.Sin(r) - r/2*math.Cos(r)
}

// Objective evaluates the N-dimensional Schwefel function at x.
func Objective(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += Component(v)
	}
	return sum
}

// Grad stores the gradient of the N-dimensional function at x into dst.
// Grad panics if the slice lengths do not match.
func Grad(dst, x []float64) {
	if len(dst) != len(x) {
		panic("schwefel: slice length mismatch")
	}
	for i, v := range x {
		dst[i] = ComponentDeriv(v)
	}
}

// Sample evaluates the component function at n points spaced uniformly over
// [lo, hi], returning the abscissae and the function values. Sample panics
// if n < 2.
func Sample(lo, hi float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	floats.Span(xs, lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = Component(x)
	}
	return xs, ys
}
