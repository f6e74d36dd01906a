// Package fixedpoint solves scalar fixed-point equations z = g(z) by direct
// iteration z ← g(z). Convergence requires the map to be a contraction near
// its fixed point (|g'(z*)| < 1); under that condition the error shrinks by
// a factor of roughly |g'(z*)| every iteration.
package fixedpoint

import (
	"math"

	"github.com/jvkersch/schwefel/common"
	"github.com/jvkersch/schwefel/write"
)

// Map is the function whose fixed point is sought.
type Map func(z float64) float64

// Settings configures a fixed-point solve. There are two interchangeable
// convergence strategies:
//
//   - Step tolerance (the default): the solve terminates once the update
//     magnitude |g(z) - z| drops below StepAbsTol, with MaximumIterations
//     acting as a failure cap.
//   - Iteration budget (BudgetOnly): exactly MaximumIterations iterations
//     are performed and the budget itself is the convergence criterion.
//     This mirrors fixed-precision usage where the budget is calibrated to
//     the number of correct digits required.
//
// The two strategies agree only to the configured precision; they are not
// guaranteed to produce bit-identical results.
type Settings struct {
	*common.CommonSettings
	StepAbsTol      float64 // Absolute tolerance on the update magnitude
	BudgetOnly      bool    // Run MaximumIterations iterations unconditionally
	InitialLocation float64 // Starting value z₀
}

// DefaultSettings returns the default settings for a fixed-point solve:
// step tolerance 1e-15 with a cap of 100 iterations, starting from zero.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		StepAbsTol:     1e-15,
	}
}

// Result is the outcome of a fixed-point solve.
type Result struct {
	*common.CommonResult
	Z    float64 // Final iterate
	Step float64 // Magnitude of the final update
}

// solver holds the per-solve state and feeds the iteration trace display.
type solver struct {
	*common.Common

	g    Map
	z    float64
	step float64

	stepTol    *common.UniToler
	budgetOnly bool
}

func newSolver() *solver {
	s := &solver{
		Common:  common.NewCommon(),
		stepTol: &common.UniToler{},
	}
	s.AddDataAdder(s)
	return s
}

func (s *solver) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Z", Value: s.z})
	v = append(v, &write.Value{Heading: "Step", Value: s.step})
	return v
}

func (s *solver) init(g Map, settings *Settings) {
	s.Common.Init(settings.CommonSettings)

	s.g = g
	s.z = settings.InitialLocation
	s.step = math.Inf(1)
	s.budgetOnly = settings.BudgetOnly

	absTol := settings.StepAbsTol
	if s.budgetOnly {
		absTol = math.NaN() // disables the absolute check
	}
	s.stepTol.Init(absTol, -1, 0, s.step)
}

func (s *solver) iterate() {
	next := s.g(s.z)
	s.step = math.Abs(next - s.z)
	s.z = next

	s.stepTol.Add(s.step)
	s.Common.Iterate()
}

func (s *solver) status() common.Status {
	if s.stepTol.AbsConverged() {
		return common.StepAbsTol
	}
	status := s.Common.Status()
	if status == common.MaximumIterations && s.budgetOnly {
		return common.IterationBudgetMet
	}
	return status
}

func (s *solver) result(status common.Status) *Result {
	return &Result{
		CommonResult: s.Common.Result(status),
		Z:            s.z,
		Step:         s.step,
	}
}

// Solve iterates z ← g(z) from settings.InitialLocation until a convergence
// criterion is met, and returns the final iterate along with bookkeeping
// about the run. A nil settings uses DefaultSettings. Solve panics if g is
// nil. Each call is independent; no state carries over between calls.
func Solve(g Map, settings *Settings) *Result {
	if g == nil {
		panic("fixedpoint: nil map")
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	s := newSolver()
	s.init(g, settings)

	var status common.Status
	for {
		status = s.status()
		if status != common.Continue {
			break
		}
		s.iterate()
	}
	return s.result(status)
}
