// Package cast converts dynamically typed values to a requested type.
//
// Values whose dynamic type is a Go primitive go through [convert], so they
// get exactly the lossless and range-checked conversions of the relation
// table: an int64 that does not fit in an int8 fails with an error that wraps
// [safemath.ErrTruncation], and a float64 never silently becomes an int.
//
// Everything else (strings, [time.Time], [time.Duration] and so on) is handed
// to [cast] for its lenient parsing.
//
// [safemath.ErrTruncation]: https://pkg.go.dev/go.dw1.io/safemath#ErrTruncation
// [cast]: https://pkg.go.dev/github.com/spf13/cast
package cast
