package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/roach88/cplx/internal/display"
	"github.com/roach88/cplx/internal/numeric"
)

// Harness executes scenarios at one scalar precision.
type Harness[T numeric.Float] struct {
	tolerance float64
	logger    *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Select the scalar type from scenario.Precision
// 2. Execute each step and compare it with its expectation
// 3. Check every listed property over the samples
//
// The scenario is validated first, so one built in code gets the same checks
// as one loaded from YAML. Mismatches are recorded on the result; the
// returned error is reserved for scenarios that cannot run at all.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with step-level debug logging.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("nil scenario")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	switch scenario.Precision {
	case "", PrecisionFloat64:
		h := &Harness[float64]{tolerance: scenario.Tolerance, logger: logger}
		return h.run(scenario), nil
	case PrecisionFloat32:
		h := &Harness[float32]{tolerance: scenario.Tolerance, logger: logger}
		return h.run(scenario), nil
	default:
		return nil, fmt.Errorf("unknown precision %q", scenario.Precision)
	}
}

func (h *Harness[T]) run(scenario *Scenario) *Result {
	result := NewResult()

	for i, step := range scenario.Steps {
		outcome := h.execute(i, step)
		result.AddOutcome(outcome)
		h.check(step, outcome, result)
		h.logger.Debug("step completed", "scenario", scenario.Name, "step", i, "op", step.Op, "outcome", outcome.String())
	}

	samples := make([]numeric.Complex[T], len(scenario.Samples))
	for i, s := range scenario.Samples {
		samples[i] = numeric.FromComplex128[T](s.complex128())
	}
	for _, name := range scenario.Properties {
		for _, msg := range checkProperty(name, samples, h.propertyDelta()) {
			result.AddError("property %s: %s", name, msg)
		}
	}

	return result
}

// propertyDelta is the tolerance for approximate laws (division round trip,
// fourth power). It falls back to a precision-specific default.
func (h *Harness[T]) propertyDelta() float64 {
	if h.tolerance > 0 {
		return h.tolerance
	}
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 1e-4
	}
	return 1e-9
}

// execute runs a single step.
func (h *Harness[T]) execute(index int, st Step) StepOutcome {
	out := StepOutcome{Index: index, Op: st.Op}
	lhs := numeric.FromComplex128[T](st.LHS.complex128())

	var rhs numeric.Complex[T]
	if st.RHS != nil {
		rhs = numeric.FromComplex128[T](st.RHS.complex128())
	}
	var scalar T
	if st.Scalar != nil {
		scalar = T(*st.Scalar)
	}

	var (
		value numeric.Complex[T]
		err   error
	)
	switch st.Op {
	case OpAdd:
		value = lhs.Add(rhs)
	case OpSub:
		value = lhs.Sub(rhs)
	case OpMul:
		value = lhs.Mul(rhs)
	case OpDiv:
		value, err = lhs.Div(rhs)
	case OpAddScalar:
		value = lhs.AddScalar(scalar)
	case OpSubScalar:
		value = lhs.SubScalar(scalar)
	case OpScale:
		value = lhs.Scale(scalar)
	case OpDivScalar:
		value, err = lhs.DivScalar(scalar)
	case OpConjugate:
		value = lhs.Conjugate()
	case OpNeg:
		value = lhs.Neg()
	case OpPower:
		value, err = numeric.Power(lhs, *st.N)
	case OpMod:
		m := lhs.Mod()
		out.Scalar = &m
		return out
	case OpPhase:
		p := lhs.Phase()
		out.Scalar = &p
		return out
	case OpDisplay:
		mode, ferr := display.ParseMode(st.Mode)
		if ferr != nil {
			out.ErrorCode = ferr.Error()
			return out
		}
		text, ferr := display.Format(lhs, mode, display.Options{Degrees: st.Degrees})
		if ferr != nil {
			out.ErrorCode = ferr.Error()
			return out
		}
		out.Text = &text
		return out
	default:
		out.ErrorCode = fmt.Sprintf("unknown op %q", st.Op)
		return out
	}

	if err != nil {
		var ae *numeric.ArithmeticError
		if errors.As(err, &ae) {
			out.ErrorCode = string(ae.Code)
		} else {
			out.ErrorCode = err.Error()
		}
		return out
	}
	z := value.Complex128()
	out.Value = &z
	return out
}

// check compares an outcome with the step's expectation.
func (h *Harness[T]) check(st Step, out StepOutcome, result *Result) {
	switch {
	case st.Error != "":
		if out.ErrorCode != st.Error {
			result.AddError("step %d (%s): expected error %s, got %s", out.Index, st.Op, st.Error, out)
		}
	case out.ErrorCode != "":
		result.AddError("step %d (%s): unexpected error %s", out.Index, st.Op, out.ErrorCode)
	case st.Expect != nil:
		if out.Value == nil || !h.near(st.Expect.Re, real(*out.Value)) || !h.near(st.Expect.Im, imag(*out.Value)) {
			result.AddError("step %d (%s): expected (%g, %g), got %s", out.Index, st.Op, st.Expect.Re, st.Expect.Im, out)
		}
	case st.ExpectScalar != nil:
		if out.Scalar == nil || !h.near(*st.ExpectScalar, *out.Scalar) {
			result.AddError("step %d (%s): expected %g, got %s", out.Index, st.Op, *st.ExpectScalar, out)
		}
	case st.ExpectText != nil:
		if out.Text == nil || *out.Text != *st.ExpectText {
			result.AddError("step %d (%s): expected %q, got %s", out.Index, st.Op, *st.ExpectText, out)
		}
	}
}

func (h *Harness[T]) near(want, got float64) bool {
	if h.tolerance == 0 {
		return want == got
	}
	return math.Abs(want-got) <= h.tolerance
}
