// Package display renders complex values as text.
//
// Six modes are supported:
//
//	Tuple  (re, im)
//	Rect   re + im i
//	Angle  <mod> L <phase> rad        (or "<deg> deg" with Options.Degrees)
//	Polar  <mod>(cos <phase> + i sin <phase>)
//	Exp    <mod> e^i <phase>
//	Cart   |z| = <mod>
//	       theta = arg(z) = <phase> rad
//
// Scalars are printed like a default C++ stream: %g with six significant
// digits, and nan, inf, -inf for non-finite values. When Options.Printer is
// set, the same digits are rendered with golang.org/x/text/number and pick up
// locale separators.
//
// Format treats an unknown mode as an error. Fprint treats it as a soft
// condition: it writes a warning to the error writer and an empty line to the
// output writer.
package display
