// Package ops exposes Go's arithmetic and bitwise operators as generic
// functions, so generic code can combine values without spelling out the
// operator.
//
// Every function has exactly the semantics of the operator it wraps:
// integers wrap around on overflow, integer division and remainder by zero
// panic with the usual run-time error, shifting by a negative count panics,
// and floating-point operations follow IEEE 754. Nothing is checked, clamped
// or saturated on top of that.
package ops
