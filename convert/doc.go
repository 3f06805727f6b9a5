// Package convert provides conversions between Go's primitive types that
// follow a fixed, explicitly enumerated relation set.
//
// Lossless conversions ([From], [Into]) exist only where every value of the
// source type is exactly representable in the target type. Range-checked
// conversions ([TryFrom], [TryInto]) exist between every pair of integer
// types and fail with a [*TryFromIntError] when the value does not fit.
// No conversion is derived by chaining two others: int32 converts to int16
// and int16 to float32, but int32 does not convert to float32.
//
// Each supported pair also has a typed function, such as [Uint16FromUint8] or
// [TryUint8FromUint16], generated from the same table. Code that sticks to
// the typed functions gets unsupported pairs rejected by the compiler.
//
// Range failures unwrap to [safemath.ErrTruncation].
//
// [safemath.ErrTruncation]: https://pkg.go.dev/go.dw1.io/safemath#ErrTruncation
package convert

//go:generate go run ../cmd/convgen -o pairs_gen.go -package convert -manifest relations.json
