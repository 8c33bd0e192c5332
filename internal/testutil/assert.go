package testutil

import (
	"math"

	"github.com/stretchr/testify/assert"
)

// DefaultDelta is the absolute tolerance used when comparing float64 results.
const DefaultDelta = 1e-9

// Float32Delta is the tolerance used when comparing float32 results.
const Float32Delta = 1e-4

type tHelper interface {
	Helper()
}

// Complexer is any value convertible to a builtin complex128.
type Complexer interface {
	Complex128() complex128
}

// AssertComplexInDelta asserts that both parts of got are within delta of want.
//
// The delta is scaled by max(1, |want|) so large-magnitude samples are compared
// relatively rather than absolutely.
func AssertComplexInDelta(t assert.TestingT, want complex128, got Complexer, delta float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	g := got.Complex128()
	scaled := delta * math.Max(1, math.Hypot(real(want), imag(want)))
	okRe := assert.InDelta(t, real(want), real(g), scaled, msgAndArgs...)
	okIm := assert.InDelta(t, imag(want), imag(g), scaled, msgAndArgs...)
	return okRe && okIm
}

// AssertComplexEqual asserts exact equality of both parts.
func AssertComplexEqual(t assert.TestingT, want complex128, got Complexer, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	g := got.Complex128()
	okRe := assert.Equal(t, real(want), real(g), msgAndArgs...)
	okIm := assert.Equal(t, imag(want), imag(g), msgAndArgs...)
	return okRe && okIm
}
