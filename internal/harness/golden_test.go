package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First run with -update to create golden files:
//
//	go test ./internal/harness -run TestRunWithGolden -update
func TestRunWithGolden(t *testing.T) {
	for _, name := range []string{"arithmetic", "division_by_zero", "polar"} {
		t.Run(name, func(t *testing.T) {
			result, err := RunWithGolden(t, mustLoad(t, name))
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_Format(t *testing.T) {
	z := complex(9, 7)
	r := NewResult()
	r.AddOutcome(StepOutcome{Index: 0, Op: OpAdd, Value: &z})

	assert.Equal(t, "scenario: demo\n0 add -> (9, 7)\n", string(Snapshot("demo", r)))
}

func TestAssertGolden_Reuse(t *testing.T) {
	result, err := Run(mustLoad(t, "division_by_zero"))
	require.NoError(t, err)
	AssertGolden(t, "division_by_zero", result)
}
