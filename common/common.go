package common

import (
	"time"

	"github.com/jvkersch/schwefel/write"
)

// CommonSettings is a set of options available to all iterative solvers
type CommonSettings struct {
	MaximumIterations int           // Sets the maximum number of iterations that can occur
	MaximumRuntime    time.Duration // Sets the maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure.
// The negative runtime means no runtime limit is enforced.
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations: 100,
		MaximumRuntime:    -1,
		WriteSettings:     write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations int           // Total number of iterations taken by the solver
	Runtime    time.Duration // Total runtime elapsed during the solve
	Status     Status        // How did the solver end
}

// Common provides iteration and runtime bookkeeping shared by the solvers,
// and owns the iteration trace display.
type Common struct {
	iter      int
	startTime time.Time

	settings *CommonSettings

	*write.Display
}

// NewCommon creates a new Common structure and registers it with the display
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init resets all of the values in Common at the start of a solve
func (c *Common) Init(settings *CommonSettings) {
	c.iter = 0
	c.startTime = time.Now()

	c.settings = settings

	c.Display.Init(c.settings.WriteSettings)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	return d
}

// Status checks if any of the limits controlled by Common have been reached
func (c *Common) Status() Status {
	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Iterations returns the number of iterations taken so far
func (c *Common) Iterations() int {
	return c.iter
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	return &CommonResult{
		Iterations: c.iter,
		Runtime:    time.Since(c.startTime),
		Status:     status,
	}
}

// Iterate increments the iteration count and flushes the display writers
func (c *Common) Iterate() {
	c.iter++
	c.Display.Iterate()
}
