package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/cplx/internal/display"
	"github.com/roach88/cplx/internal/numeric"
)

// Scenario defines a conformance scenario.
// A scenario runs a list of operations against the complex type and checks
// each outcome, then checks algebraic properties over a set of samples.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Precision selects the scalar type: "float64" (default) or "float32".
	Precision string `yaml:"precision,omitempty"`

	// Tolerance is the absolute per-part tolerance for expected values.
	// Zero means exact comparison.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Steps are executed in order. Each step is independent.
	Steps []Step `yaml:"steps"`

	// Samples are the operands that Properties are checked against.
	Samples []Operand `yaml:"samples,omitempty"`

	// Properties name algebraic laws checked over every sample (and every
	// pair of samples for binary laws). See the Property constants.
	Properties []string `yaml:"properties,omitempty"`
}

// Step is one operation with its expected outcome.
type Step struct {
	// Op is the operation name. See the Op constants.
	Op string `yaml:"op"`

	// LHS is the receiver of the operation.
	LHS Operand `yaml:"lhs"`

	// RHS is the complex operand for binary operations.
	RHS *Operand `yaml:"rhs,omitempty"`

	// Scalar is the real operand for *_scalar operations.
	Scalar *float64 `yaml:"scalar,omitempty"`

	// N is the exponent for power.
	N *int `yaml:"n,omitempty"`

	// Mode and Degrees configure the display operation.
	Mode    string `yaml:"mode,omitempty"`
	Degrees bool   `yaml:"degrees,omitempty"`

	// Exactly one of the expectations below must be set.
	Expect       *Operand `yaml:"expect,omitempty"`
	ExpectScalar *float64 `yaml:"expect_scalar,omitempty"`
	ExpectText   *string  `yaml:"expect_text,omitempty"`
	Error        string   `yaml:"error,omitempty"`
}

// Operand is a complex literal written as a two-element YAML sequence
// [re, im].
type Operand struct {
	Re float64
	Im float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	var parts []float64
	if err := node.Decode(&parts); err != nil {
		return fmt.Errorf("line %d: operand must be [re, im]: %w", node.Line, err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("line %d: operand must have exactly 2 elements, got %d", node.Line, len(parts))
	}
	o.Re, o.Im = parts[0], parts[1]
	return nil
}

func (o Operand) complex128() complex128 {
	return complex(o.Re, o.Im)
}

// Op constants.
const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpDiv       = "div"
	OpAddScalar = "add_scalar"
	OpSubScalar = "sub_scalar"
	OpScale     = "scale"
	OpDivScalar = "div_scalar"
	OpConjugate = "conjugate"
	OpNeg       = "neg"
	OpMod       = "mod"
	OpPhase     = "phase"
	OpPower     = "power"
	OpDisplay   = "display"
)

// Precision constants.
const (
	PrecisionFloat64 = "float64"
	PrecisionFloat32 = "float32"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "step:" vs "steps:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Precision {
	case "", PrecisionFloat64, PrecisionFloat32:
	default:
		return fmt.Errorf("unknown precision %q", s.Precision)
	}

	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative")
	}

	if len(s.Steps) == 0 && len(s.Properties) == 0 {
		return fmt.Errorf("steps or properties are required")
	}

	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}

	if len(s.Properties) > 0 && len(s.Samples) == 0 {
		return fmt.Errorf("samples are required when properties are listed")
	}
	for i, p := range s.Properties {
		if !knownProperty(p) {
			return fmt.Errorf("properties[%d]: unknown property %q", i, p)
		}
	}

	return nil
}

// validateStep checks operands and expectations for a single step.
func validateStep(index int, st *Step) error {
	if st.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}

	switch st.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
		if st.RHS == nil {
			return fmt.Errorf("steps[%d]: rhs is required for %s", index, st.Op)
		}
	case OpAddScalar, OpSubScalar, OpScale, OpDivScalar:
		if st.Scalar == nil {
			return fmt.Errorf("steps[%d]: scalar is required for %s", index, st.Op)
		}
	case OpPower:
		if st.N == nil {
			return fmt.Errorf("steps[%d]: n is required for power", index)
		}
	case OpDisplay:
		if _, err := display.ParseMode(st.Mode); err != nil {
			return fmt.Errorf("steps[%d]: %w", index, err)
		}
	case OpConjugate, OpNeg, OpMod, OpPhase:
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	set := 0
	if st.Expect != nil {
		set++
	}
	if st.ExpectScalar != nil {
		set++
	}
	if st.ExpectText != nil {
		set++
	}
	if st.Error != "" {
		set++
		if st.Error != string(numeric.ErrCodeDivisionByZero) {
			return fmt.Errorf("steps[%d]: unknown error code %q", index, st.Error)
		}
	}
	if set != 1 {
		return fmt.Errorf("steps[%d]: exactly one of expect, expect_scalar, expect_text, error is required", index)
	}

	switch st.Op {
	case OpMod, OpPhase:
		if st.ExpectScalar == nil {
			return fmt.Errorf("steps[%d]: %s requires expect_scalar", index, st.Op)
		}
	case OpDisplay:
		if st.ExpectText == nil {
			return fmt.Errorf("steps[%d]: display requires expect_text", index)
		}
	default:
		if st.ExpectScalar != nil || st.ExpectText != nil {
			return fmt.Errorf("steps[%d]: %s requires expect or error", index, st.Op)
		}
	}

	return nil
}
