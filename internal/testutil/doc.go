// Package testutil provides deterministic operands and tolerance assertions
// shared by the numeric, display and harness tests.
//
// Helpers take builtin complex128 values (or anything with a Complex128
// method) so this package does not import the packages it tests.
package testutil
