package numeric

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is the sentinel matched by errors.Is for any division
// whose divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero not allowed")

// ArithmeticErrorCode categorizes arithmetic errors.
type ArithmeticErrorCode string

const (
	// ErrCodeDivisionByZero indicates a divisor that is exactly zero.
	ErrCodeDivisionByZero ArithmeticErrorCode = "DIVISION_BY_ZERO"
)

// ArithmeticError represents a failed complex operation.
type ArithmeticError struct {
	// Code identifies the error category.
	Code ArithmeticErrorCode

	// Op names the operation that failed ("div", "div_scalar", "power").
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is the sentinel for this error's code.
func (e *ArithmeticError) Is(target error) bool {
	return target == ErrDivisionByZero && e.Code == ErrCodeDivisionByZero
}

// IsDivisionByZero returns true if err is, or wraps, a division-by-zero error.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

func newDivisionByZeroError(op string) *ArithmeticError {
	return &ArithmeticError{
		Code:    ErrCodeDivisionByZero,
		Op:      op,
		Message: ErrDivisionByZero.Error(),
	}
}
