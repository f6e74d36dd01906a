package extrema

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/optimize"

	"github.com/jvkersch/schwefel/schwefel"
)

// The closed-form extremum must agree with what a general-purpose local
// minimizer finds when started in the same basin.
func TestCrossCheckNelderMead(t *testing.T) {
	e, err := Solve(7, nil)
	if err != nil {
		t.Fatal(err)
	}

	problem := optimize.Problem{
		Func: schwefel.Objective,
		Grad: schwefel.Grad,
	}
	result, err := optimize.Minimize(problem, []float64{400}, nil, &optimize.NelderMead{})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}

	if !scalar.EqualWithinAbsOrRel(result.X[0], e.X, 1e-4, 1e-4) {
		t.Errorf("Nelder-Mead minimizer %v, closed form %v", result.X[0], e.X)
	}
	if !scalar.EqualWithinAbsOrRel(result.F, e.F, 1e-6, 1e-6) {
		t.Errorf("Nelder-Mead minimum %v, closed form %v", result.F, e.F)
	}
}

func TestCrossCheckGradientDescent(t *testing.T) {
	problem := optimize.Problem{
		Func: schwefel.Objective,
		Grad: schwefel.Grad,
	}
	result, err := optimize.Minimize(problem, []float64{400, 430}, nil, &optimize.LBFGS{})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}

	e, err := Solve(7, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range result.X {
		if !scalar.EqualWithinAbsOrRel(x, e.X, 1e-5, 1e-5) {
			t.Errorf("coordinate %d: %v, want %v", i, x, e.X)
		}
	}
}
