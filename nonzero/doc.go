// Package nonzero provides integers that are known not to be zero, with the
// same conversion relations as the plain integer types in package convert.
//
// Converting a plain integer into an [Int] fails only when the value is zero.
// Converting between [Int] types follows the lossless and range-checked rows
// of the relation table; the non-zero guarantee carries over because a
// successful conversion preserves the value.
package nonzero
