package convert

import (
	"errors"
	"fmt"

	"go.dw1.io/safemath"
)

// ErrUnsupported indicates that no conversion exists between two types.
//
// It is wrapped by [*UnsupportedError].
var ErrUnsupported = errors.New("unsupported conversion")

// ErrZero indicates that zero was offered where a non-zero integer is
// required.
//
// It is wrapped by [*TryFromIntError].
var ErrZero = errors.New("zero is not a valid non-zero integer")

// UnsupportedError is returned, or raised by [From] and [Into], when the
// relation set has no conversion from Source to Target.
type UnsupportedError struct {
	Source Kind
	Target Kind
	// Type names the dynamic type of a non-primitive source, if any.
	Type string
}

func (e *UnsupportedError) Error() string {
	src := e.Source.String()
	if e.Type != "" {
		src = e.Type
	}

	return fmt.Sprintf("convert: %s from %s to %s", ErrUnsupported, src, e.Target)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// TryFromIntError reports that Value is not representable in Target.
type TryFromIntError struct {
	// Value is the rejected source value, with its original type.
	Value  any
	Source Kind
	Target Kind
	// NonZero is set when Target is the non-zero variant of its kind.
	NonZero bool
	// Zero is set when the value was rejected only because it is zero.
	Zero bool
}

func (e *TryFromIntError) Error() string {
	target := e.Target.String()
	if e.NonZero {
		target = "non-zero " + target
	}

	if e.Zero {
		return fmt.Sprintf("convert: zero is not a valid %s", target)
	}

	return fmt.Sprintf("convert: %v (%s) out of range for %s", e.Value, e.Source, target)
}

// Unwrap returns [ErrZero] for zero rejections and [safemath.ErrTruncation]
// otherwise.
func (e *TryFromIntError) Unwrap() error {
	if e.Zero {
		return ErrZero
	}

	return safemath.ErrTruncation
}
