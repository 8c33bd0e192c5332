package harness

import (
	"fmt"
	"math"

	"github.com/roach88/cplx/internal/numeric"
)

// Property constants. Unary properties are checked for every sample, binary
// properties for every ordered pair of samples.
const (
	PropAddCommutative   = "add_commutative"
	PropMulCommutative   = "mul_commutative"
	PropAddIdentity      = "add_identity"
	PropMulIdentity      = "mul_identity"
	PropDivRoundTrip     = "div_round_trip"
	PropDoubleConjugate  = "double_conjugate"
	PropConjugateModulus = "conjugate_modulus"
	PropPowerZero        = "power_zero"
	PropPowerFour        = "power_four"
	PropDivByZero        = "div_by_zero"
)

// Properties lists every supported property name.
func Properties() []string {
	return []string{
		PropAddCommutative,
		PropMulCommutative,
		PropAddIdentity,
		PropMulIdentity,
		PropDivRoundTrip,
		PropDoubleConjugate,
		PropConjugateModulus,
		PropPowerZero,
		PropPowerFour,
		PropDivByZero,
	}
}

func knownProperty(name string) bool {
	for _, p := range Properties() {
		if p == name {
			return true
		}
	}
	return false
}

// checkProperty evaluates one property over the samples and returns a
// message per violation.
func checkProperty[T numeric.Float](name string, samples []numeric.Complex[T], delta float64) []string {
	var violations []string
	fail := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}
	zero := numeric.Complex[T]{}
	one := numeric.FromScalar[T](1)

	switch name {
	case PropAddCommutative, PropMulCommutative, PropDivRoundTrip:
		for _, a := range samples {
			for _, b := range samples {
				switch name {
				case PropAddCommutative:
					if !a.Add(b).Equal(b.Add(a)) {
						fail("%v + %v != %v + %v", a.Complex128(), b.Complex128(), b.Complex128(), a.Complex128())
					}
				case PropMulCommutative:
					if !a.Mul(b).Equal(b.Mul(a)) {
						fail("%v * %v != %v * %v", a.Complex128(), b.Complex128(), b.Complex128(), a.Complex128())
					}
				case PropDivRoundTrip:
					if b.IsZero() {
						continue
					}
					q, err := a.Div(b)
					if err != nil {
						fail("%v / %v: %v", a.Complex128(), b.Complex128(), err)
						continue
					}
					if !near(a.Complex128(), q.Mul(b).Complex128(), delta) {
						fail("(%v / %v) * %v = %v", a.Complex128(), b.Complex128(), b.Complex128(), q.Mul(b).Complex128())
					}
				}
			}
		}
	case PropAddIdentity:
		for _, a := range samples {
			if !a.Add(zero).Equal(a) {
				fail("%v + 0 = %v", a.Complex128(), a.Add(zero).Complex128())
			}
		}
	case PropMulIdentity:
		for _, a := range samples {
			if !a.Mul(one).Equal(a) {
				fail("%v * 1 = %v", a.Complex128(), a.Mul(one).Complex128())
			}
		}
	case PropDoubleConjugate:
		for _, a := range samples {
			if !a.Conjugate().Conjugate().Equal(a) {
				fail("conj(conj(%v)) = %v", a.Complex128(), a.Conjugate().Conjugate().Complex128())
			}
		}
	case PropConjugateModulus:
		for _, a := range samples {
			if a.Mod() != a.Conjugate().Mod() {
				fail("mod(%v) = %g, mod(conj) = %g", a.Complex128(), a.Mod(), a.Conjugate().Mod())
			}
		}
	case PropPowerZero:
		for _, a := range append([]numeric.Complex[T]{zero}, samples...) {
			p, err := numeric.Power(a, 0)
			if err != nil || !p.Equal(one) {
				fail("power(%v, 0) = %v, %v", a.Complex128(), p.Complex128(), err)
			}
		}
	case PropPowerFour:
		for _, a := range samples {
			want := a.Mul(a).Mul(a).Mul(a)
			p, err := numeric.Power(a, 4)
			if err != nil || !near(want.Complex128(), p.Complex128(), delta) {
				fail("power(%v, 4) = %v, want %v", a.Complex128(), p.Complex128(), want.Complex128())
			}
		}
	case PropDivByZero:
		for _, a := range samples {
			if _, err := a.Div(zero); !numeric.IsDivisionByZero(err) {
				fail("%v / (0, 0) returned %v", a.Complex128(), err)
			}
			if _, err := a.DivScalar(0); !numeric.IsDivisionByZero(err) {
				fail("%v / 0 returned %v", a.Complex128(), err)
			}
		}
	default:
		fail("unknown property")
	}
	return violations
}

// near compares both parts with a tolerance relative to max(1, |want|).
func near(want, got complex128, delta float64) bool {
	scaled := delta * math.Max(1, math.Hypot(real(want), imag(want)))
	return math.Abs(real(want)-real(got)) <= scaled && math.Abs(imag(want)-imag(got)) <= scaled
}
