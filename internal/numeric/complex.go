package numeric

import "math"

// Float is a constraint that permits any floating-point scalar.
type Float interface {
	~float32 | ~float64
}

// Complex is a point in the complex plane with parts of type T.
// The zero value is (0, 0).
type Complex[T Float] struct {
	real T
	imag T
}

// Complex128 and Complex64 are the two common instantiations.
type (
	Complex128 = Complex[float64]
	Complex64  = Complex[float32]
)

// New creates the value re + im·i.
func New[T Float](re, im T) Complex[T] {
	return Complex[T]{real: re, imag: im}
}

// FromScalar creates the value x + 0i.
func FromScalar[T Float](x T) Complex[T] {
	return Complex[T]{real: x}
}

// FromPolar creates the value with modulus r and phase theta (radians).
func FromPolar[T Float](r, theta float64) Complex[T] {
	sin, cos := math.Sincos(theta)
	return Complex[T]{real: T(r * cos), imag: T(r * sin)}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128[T Float](z complex128) Complex[T] {
	return Complex[T]{real: T(real(z)), imag: T(imag(z))}
}

// Real returns the real part.
func (c Complex[T]) Real() T { return c.real }

// Imag returns the imaginary part.
func (c Complex[T]) Imag() T { return c.imag }

// Complex128 converts c to a builtin complex128.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.real), float64(c.imag))
}

// Equal reports whether both parts are exactly equal.
func (c Complex[T]) Equal(o Complex[T]) bool {
	return c.real == o.real && c.imag == o.imag
}

// IsZero reports whether c is exactly (0, 0).
func (c Complex[T]) IsZero() bool {
	return c.real == 0 && c.imag == 0
}

// Add returns c + o.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{real: c.real + o.real, imag: c.imag + o.imag}
}

// AddScalar returns c + (x, 0).
func (c Complex[T]) AddScalar(x T) Complex[T] {
	return Complex[T]{real: c.real + x, imag: c.imag}
}

// Sub returns c - o.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{real: c.real - o.real, imag: c.imag - o.imag}
}

// SubScalar returns c - (x, 0).
func (c Complex[T]) SubScalar(x T) Complex[T] {
	return Complex[T]{real: c.real - x, imag: c.imag}
}

// Mul returns c · o = (ac - bd) + (ad + bc)i.
//
// Each product is rounded to T before summing so the result does not depend
// on whether the target fuses multiply-add; this keeps Mul commutative.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return Complex[T]{
		real: T(c.real*o.real) - T(c.imag*o.imag),
		imag: T(c.real*o.imag) + T(c.imag*o.real),
	}
}

// Scale returns c with both parts multiplied by x.
func (c Complex[T]) Scale(x T) Complex[T] {
	return Complex[T]{real: c.real * x, imag: c.imag * x}
}

// MulScalar is an alias for Scale.
func (c Complex[T]) MulScalar(x T) Complex[T] {
	return c.Scale(x)
}

// Div returns c / o using conjugate multiplication.
//
// A zero dividend short-circuits to (0, 0) once the divisor is known to be
// non-zero.
func (c Complex[T]) Div(o Complex[T]) (Complex[T], error) {
	if o.IsZero() {
		return Complex[T]{}, newDivisionByZeroError("div")
	}
	if c.IsZero() {
		return Complex[T]{}, nil
	}
	denom := o.real*o.real + o.imag*o.imag
	return Complex[T]{
		real: (c.real*o.real + c.imag*o.imag) / denom,
		imag: (c.imag*o.real - c.real*o.imag) / denom,
	}, nil
}

// DivScalar returns c with both parts divided by x.
func (c Complex[T]) DivScalar(x T) (Complex[T], error) {
	if x == 0 {
		return Complex[T]{}, newDivisionByZeroError("div_scalar")
	}
	return Complex[T]{real: c.real / x, imag: c.imag / x}, nil
}

// Conjugate returns (re, -im).
func (c Complex[T]) Conjugate() Complex[T] {
	return Complex[T]{real: c.real, imag: -c.imag}
}

// Neg returns (-re, -im).
func (c Complex[T]) Neg() Complex[T] {
	return Complex[T]{real: -c.real, imag: -c.imag}
}

// Mod returns the modulus sqrt(re² + im²) in float64.
func (c Complex[T]) Mod() float64 {
	re, im := float64(c.real), float64(c.imag)
	return math.Sqrt(re*re + im*im)
}

// Phase returns atan2(im, re) in (-π, π]. The phase of (0, 0) is 0.
func (c Complex[T]) Phase() float64 {
	return math.Atan2(float64(c.imag), float64(c.real))
}
