package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/roach88/cplx/internal/numeric"
)

// InvalidModeWarning is written to the error stream by Fprint for an
// unknown mode.
const InvalidModeWarning = "Use a valid Display Mode!"

// significantDigits matches the default precision of a C++ output stream.
const significantDigits = 6

// Options tunes rendering. The zero value prints Angle mode in radians with
// plain C-locale scalars.
type Options struct {
	// Degrees renders the Angle mode phase in degrees instead of radians.
	Degrees bool

	// Printer localizes scalars. Nil means strconv formatting.
	Printer *message.Printer
}

// Scalar renders a single real number the way Format renders each part:
// %g with six significant digits, and nan, inf or -inf for non-finite
// values. A Printer localizes the separators of the same digits; the
// exponent of scientific output stays in e±dd form.
func (o Options) Scalar(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	plain := strconv.FormatFloat(v, 'g', significantDigits, 64)
	if o.Printer == nil {
		return plain
	}

	mantissa, exp, scientific := strings.Cut(plain, "e")
	m, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return plain
	}
	fraction := 0
	if _, frac, ok := strings.Cut(mantissa, "."); ok {
		fraction = len(frac)
	}
	text := o.Printer.Sprintf("%v", number.Decimal(m, number.MaxFractionDigits(fraction)))
	if scientific {
		text += "e" + exp
	}
	return text
}

// Format renders c in the given mode.
func Format[T numeric.Float](c numeric.Complex[T], mode Mode, opts Options) (string, error) {
	re, im := float64(c.Real()), float64(c.Imag())
	switch mode {
	case Tuple:
		return "(" + opts.Scalar(re) + ", " + opts.Scalar(im) + ")", nil
	case Rect:
		return opts.Scalar(re) + " + " + opts.Scalar(im) + " i", nil
	case Angle:
		if opts.Degrees {
			return opts.Scalar(c.Mod()) + " L " + opts.Scalar(Degrees(c.Phase())) + " deg", nil
		}
		return opts.Scalar(c.Mod()) + " L " + opts.Scalar(c.Phase()) + " rad", nil
	case Polar:
		phase := opts.Scalar(c.Phase())
		return opts.Scalar(c.Mod()) + "(cos " + phase + " + i sin " + phase + ")", nil
	case Exp:
		return opts.Scalar(c.Mod()) + " e^i " + opts.Scalar(c.Phase()), nil
	case Cart:
		return "|z| = " + opts.Scalar(c.Mod()) + "\ntheta = arg(z) = " + opts.Scalar(c.Phase()) + " rad", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
}

// Fprint writes c in the given mode followed by a newline to w.
//
// An unknown mode writes InvalidModeWarning to errw and only the newline to
// w. The returned error reports write failures, never the mode.
func Fprint[T numeric.Float](w, errw io.Writer, c numeric.Complex[T], mode Mode, opts Options) error {
	text, err := Format(c, mode, opts)
	if err != nil {
		if _, werr := fmt.Fprintln(errw, InvalidModeWarning); werr != nil {
			return werr
		}
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
