package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks a variadic number of Statusers and returns the
// first result that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[StepAbsTol] = "StepAbsTol"
	statusStrings[StepChangeTol] = "StepChangeTol"
	statusStrings[ResidualTol] = "ResidualTol"
	statusStrings[IterationBudgetMet] = "IterationBudgetMet"

	statusStrings[SolverError] = "SolverError"
	statusStrings[InvalidArgument] = "InvalidArgument"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if an iterative solver has finished or not.
// Zero signifies no convergence so the solver should continue.
// Positive values indicate successful convergence,
// negative values express failure in some way.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

const (
	Continue Status = iota
	// StepAbsTol means the magnitude of the most recent update fell below
	// the absolute step tolerance
	StepAbsTol
	// StepChangeTol means the step magnitude stopped changing relative to
	// a trailing window
	StepChangeTol
	// ResidualTol means the residual of the equation being solved fell
	// below its tolerance
	ResidualTol
	// IterationBudgetMet means a fixed iteration budget was requested and
	// has been spent in full. This is successful termination: the budget
	// is the convergence criterion
	IterationBudgetMet
)

const (
	_                  = iota
	SolverError Status = -1 * iota
	InvalidArgument
	MaximumIterations
	MaximumRuntime
)

var lastStatus Status = 256
