package harness

import "fmt"

// StepOutcome records what a step produced.
type StepOutcome struct {
	Index int
	Op    string

	// Value holds complex results (as complex128 regardless of precision).
	Value *complex128

	// Scalar holds mod/phase results.
	Scalar *float64

	// Text holds display results.
	Text *string

	// ErrorCode is set when the operation failed.
	ErrorCode string
}

// String renders the outcome on a single line for traces and golden files.
func (o StepOutcome) String() string {
	switch {
	case o.ErrorCode != "":
		return fmt.Sprintf("%d %s -> error %s", o.Index, o.Op, o.ErrorCode)
	case o.Value != nil:
		return fmt.Sprintf("%d %s -> (%.17g, %.17g)", o.Index, o.Op, real(*o.Value), imag(*o.Value))
	case o.Scalar != nil:
		return fmt.Sprintf("%d %s -> %.17g", o.Index, o.Op, *o.Scalar)
	case o.Text != nil:
		return fmt.Sprintf("%d %s -> %q", o.Index, o.Op, *o.Text)
	default:
		return fmt.Sprintf("%d %s -> <none>", o.Index, o.Op)
	}
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every step and property matched.
	Pass bool

	// Outcomes contains one entry per step, in order.
	Outcomes []StepOutcome

	// Errors contains mismatch messages.
	// Empty if Pass is true.
	Errors []string
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []StepOutcome{},
		Errors:   []string{},
	}
}

// AddError adds a mismatch message and marks the result as failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// AddOutcome appends a step outcome.
func (r *Result) AddOutcome(o StepOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}
