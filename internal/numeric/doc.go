// Package numeric provides the generic complex-number value type.
//
// Complex[T] is a plain value over a floating-point scalar T. Every binary
// operation returns a fresh value; only the pointer-receiver *Assign and Set
// methods mutate, and they always replace both parts as a pair.
//
// Division is the only partial operation. Dividing by an exact zero (a zero
// scalar, or a complex value whose parts are both zero) returns an
// *ArithmeticError that matches ErrDivisionByZero. Floating-point overflow and
// NaN are not detected; they follow IEEE-754 semantics of T.
//
// Queries (Mod, Phase) are always evaluated in float64 regardless of T.
package numeric
