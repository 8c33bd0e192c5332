package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	c := New(1.0, 1.0)
	c.Set(New(5.0, 2.0))
	assert.Equal(t, complex(5, 2), c.Complex128())
}

func TestSetScalar_Resets(t *testing.T) {
	c := New(5.0, 2.0)
	c.SetScalar(3)
	assert.Equal(t, complex(3, 0), c.Complex128(), "scalar assignment clears the imaginary part")
}

func TestCompoundAssign_Sequence(t *testing.T) {
	c := New(5.0, 2.0)

	c.AddScalarAssign(5)
	assert.Equal(t, complex(10, 2), c.Complex128())

	c.SubScalarAssign(6)
	assert.Equal(t, complex(4, 2), c.Complex128())

	c.MulScalarAssign(7)
	assert.Equal(t, complex(28, 14), c.Complex128())

	require.NoError(t, c.DivScalarAssign(8))
	assert.Equal(t, complex(3.5, 1.75), c.Complex128())
}

func TestCompoundAssign_Complex(t *testing.T) {
	a := New(5.0, 2.0)
	b := New(4.0, 5.0)

	c := a
	c.AddAssign(b)
	assert.Equal(t, a.Add(b), c)

	c = a
	c.SubAssign(b)
	assert.Equal(t, a.Sub(b), c)

	c = a
	c.MulAssign(b)
	assert.Equal(t, a.Mul(b), c)

	c = a
	require.NoError(t, c.DivAssign(b))
	want, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, want, c)
}

func TestCompoundAssign_Chains(t *testing.T) {
	c := New(1.0, 0.0)
	c.AddAssign(New(1.0, 1.0)).MulScalarAssign(2)
	assert.Equal(t, complex(4, 2), c.Complex128())
}

func TestDivAssign_ErrorLeavesReceiver(t *testing.T) {
	c := New(5.0, 2.0)

	err := c.DivAssign(Complex128{})
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, complex(5, 2), c.Complex128())

	err = c.DivScalarAssign(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, complex(5, 2), c.Complex128())
}

func TestBinaryOps_DoNotMutateOperands(t *testing.T) {
	a := New(5.0, 2.0)
	b := New(4.0, 5.0)
	_ = a.Add(b)
	_ = a.Mul(b)
	_, _ = a.Div(b)
	assert.Equal(t, complex(5, 2), a.Complex128())
	assert.Equal(t, complex(4, 5), b.Complex128())
}
