package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cplx/internal/testutil"
)

func TestPower_Zero(t *testing.T) {
	for _, c := range []Complex128{{}, New(5.0, 2.0), New(-3.0, 0.5)} {
		p, err := Power(c, 0)
		require.NoError(t, err)
		assert.Equal(t, complex(1, 0), p.Complex128(), "power(%v, 0)", c)
	}
}

func TestPower_One(t *testing.T) {
	c := New(5.0, 2.0)
	assert.Equal(t, c, MustPower(c, 1))
}

func TestPower_Fourth(t *testing.T) {
	for _, z := range testutil.Samples() {
		c := FromComplex128[float64](z)
		want := c.Mul(c).Mul(c).Mul(c)
		testutil.AssertComplexInDelta(t, want.Complex128(), MustPower(c, 4), testutil.DefaultDelta, "z=%v", z)
	}
}

func TestPower_IntegerExact(t *testing.T) {
	// (1+i)^8 = 16
	assert.Equal(t, complex(16, 0), MustPower(New(1.0, 1.0), 8).Complex128())
	// i^3 = -i
	assert.Equal(t, complex(0, -1), MustPower(New(0.0, 1.0), 3).Complex128())
}

func TestPower_OddExponents(t *testing.T) {
	c := New(1.5, -0.5)
	for n := 1; n <= 9; n += 2 {
		want := FromScalar(1.0)
		for i := 0; i < n; i++ {
			want = want.Mul(c)
		}
		testutil.AssertComplexInDelta(t, want.Complex128(), MustPower(c, n), testutil.DefaultDelta, "n=%d", n)
	}
}

func TestPower_Negative(t *testing.T) {
	c := New(5.0, 2.0)
	got, err := Power(c, -2)
	require.NoError(t, err)

	want, err := FromScalar(1.0).Div(c.Mul(c))
	require.NoError(t, err)
	testutil.AssertComplexInDelta(t, want.Complex128(), got, testutil.DefaultDelta)
}

func TestPower_NegativeExact(t *testing.T) {
	assert.Equal(t, complex(0, -0.5), MustPower(New(0.0, 2.0), -1).Complex128())
	assert.Equal(t, complex(0.25, 0), MustPower(New(-2.0, 0.0), -2).Complex128())
	assert.Equal(t, complex(0, -1), MustPower(New(0.0, 1.0), -1).Complex128())
}

func TestPower_NegativeOverflowsToInf(t *testing.T) {
	// 1e-400 underflows, but the base itself is non-zero.
	p, err := Power(New(1e-200, 0.0), -2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(p.Real(), 1), "got %v", p.Complex128())

	p32, err := Power(New(float32(1e-30), float32(0)), -2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(p32.Real()), 1), "got %v", p32.Complex128())
}

func TestPower_NegativeUnderflowsToZero(t *testing.T) {
	p, err := Power(New(1e200, 0.0), -2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Real())
}

func TestPower_NegativeOfZero(t *testing.T) {
	_, err := Power(Complex128{}, -1)
	require.Error(t, err)
	assert.True(t, IsDivisionByZero(err))

	var ae *ArithmeticError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "power", ae.Op)
}

func TestMustPower_Panics(t *testing.T) {
	assert.Panics(t, func() { MustPower(Complex128{}, -3) })
}

func TestPower_Float32(t *testing.T) {
	c := New(float32(1), float32(1))
	p := MustPower(c, 4)
	assert.Equal(t, float32(-4), p.Real())
	assert.Equal(t, float32(0), p.Imag())
}
