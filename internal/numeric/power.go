package numeric

// Power returns x raised to the integer power n by recursive squaring.
//
// Power(x, 0) is (1, 0) for every x, including (0, 0). A negative n yields
// the reciprocal power (1/x)^-n. Only a zero base with a negative exponent
// fails, with ErrDivisionByZero; overflow and underflow follow IEEE rules.
func Power[T Float](x Complex[T], n int) (Complex[T], error) {
	if n >= 0 {
		return power(x, n), nil
	}
	if x.IsZero() {
		return Complex[T]{}, &ArithmeticError{
			Code:    ErrCodeDivisionByZero,
			Op:      "power",
			Message: "negative power of zero",
		}
	}
	return power(reciprocal(x), -n), nil
}

// reciprocal returns 1 / x for a non-zero x. Dividing by the larger part
// first keeps the intermediate from underflowing, so tiny or huge bases
// still produce IEEE overflow and underflow in the final power.
func reciprocal[T Float](x Complex[T]) Complex[T] {
	re, im := x.real, x.imag
	if abs(re) >= abs(im) {
		r := im / re
		d := re + im*r
		return Complex[T]{real: 1 / d, imag: -r / d}
	}
	r := re / im
	d := im + re*r
	return Complex[T]{real: r / d, imag: -1 / d}
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// MustPower is like Power but panics on error.
func MustPower[T Float](x Complex[T], n int) Complex[T] {
	p, err := Power(x, n)
	if err != nil {
		panic(err)
	}
	return p
}

func power[T Float](x Complex[T], n int) Complex[T] {
	if n == 0 {
		return FromScalar[T](1)
	}
	half := power(x, n/2)
	if n%2 == 0 {
		return half.Mul(half)
	}
	return x.Mul(half).Mul(half)
}
