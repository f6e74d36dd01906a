package fixedpoint

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jvkersch/schwefel/common"
	"github.com/jvkersch/schwefel/write"
)

// The Dottie number, the unique fixed point of cos.
const dottie = 0.7390851332151607

func TestSolveStepTolerance(t *testing.T) {
	res := Solve(math.Cos, nil)

	if res.Status != common.StepAbsTol {
		t.Errorf("status = %v, want StepAbsTol", res.Status)
	}
	if !scalar.EqualWithinAbsOrRel(res.Z, dottie, 1e-14, 1e-14) {
		t.Errorf("z = %v, want %v", res.Z, dottie)
	}
	if res.Step >= 1e-15 {
		t.Errorf("final step %v not below tolerance", res.Step)
	}
}

func TestSolveIterationBudget(t *testing.T) {
	settings := DefaultSettings()
	settings.BudgetOnly = true
	settings.MaximumIterations = 80

	res := Solve(math.Cos, settings)

	if res.Status != common.IterationBudgetMet {
		t.Errorf("status = %v, want IterationBudgetMet", res.Status)
	}
	if res.Iterations != 80 {
		t.Errorf("took %d iterations, want exactly 80", res.Iterations)
	}
	if !scalar.EqualWithinAbsOrRel(res.Z, dottie, 1e-12, 1e-12) {
		t.Errorf("z = %v, want %v", res.Z, dottie)
	}
}

func TestSolveMaximumIterations(t *testing.T) {
	// An unreachable tolerance must report the cap as an abnormal status,
	// not hang.
	settings := DefaultSettings()
	settings.StepAbsTol = 0
	settings.MaximumIterations = 10

	res := Solve(math.Cos, settings)

	if res.Status != common.MaximumIterations {
		t.Errorf("status = %v, want MaximumIterations", res.Status)
	}
	if res.Iterations != 10 {
		t.Errorf("took %d iterations, want 10", res.Iterations)
	}
}

func TestSolveInitialLocation(t *testing.T) {
	settings := DefaultSettings()
	settings.InitialLocation = 5

	res := Solve(math.Cos, settings)
	if !scalar.EqualWithinAbsOrRel(res.Z, dottie, 1e-14, 1e-14) {
		t.Errorf("z = %v, want %v", res.Z, dottie)
	}
}

func TestSolveIdempotent(t *testing.T) {
	a := Solve(math.Cos, nil)
	b := Solve(math.Cos, nil)
	if a.Z != b.Z || a.Step != b.Step || a.Iterations != b.Iterations {
		t.Errorf("repeated solves differ: %+v vs %+v", a, b)
	}
}

func TestSolveNilMapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil map")
		}
	}()
	Solve(nil, nil)
}

func TestSolveTrace(t *testing.T) {
	var display, csv bytes.Buffer

	settings := DefaultSettings()
	settings.DisplayWriters = []write.Writer{
		{Writer: &display, T: write.Displayer},
		{Writer: &csv, T: write.Logger},
	}

	res := Solve(math.Cos, settings)
	if res.Status != common.StepAbsTol {
		t.Fatalf("status = %v, want StepAbsTol", res.Status)
	}

	if !strings.Contains(display.String(), "Iter") || !strings.Contains(display.String(), "Step") {
		t.Errorf("display trace missing headings:\n%s", display.String())
	}
	lines := strings.Split(strings.TrimSpace(csv.String()), "\n")
	if lines[0] != "Iter,Z,Step" {
		t.Errorf("csv header = %q, want Iter,Z,Step", lines[0])
	}
	if len(lines) != res.Iterations+1 {
		t.Errorf("csv has %d rows, want %d iterations plus header", len(lines)-1, res.Iterations)
	}
}
