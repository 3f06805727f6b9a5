package convert

import (
	"fmt"

	"go.dw1.io/constconv/internal/relation"
)

// From converts v to T losslessly. Converting a value to its own type
// returns it unchanged.
//
// From panics with an [*UnsupportedError] when no lossless conversion from S
// to T exists. Use the generated typed functions to have such calls rejected
// at compile time instead.
func From[T, S Primitive](v S) T {
	if t, ok := any(v).(T); ok {
		return t
	}

	s := load(v)
	dst := KindOf[T]()
	if !relation.Lookup(s.kind, dst).Infallible() {
		panic(&UnsupportedError{Source: s.kind, Target: dst})
	}

	return emit[T](s)
}

// Into converts v to T losslessly. It is the reciprocal of [From]: Into[T](v)
// is defined wherever From[T](v) is.
func Into[T, S Primitive](v S) T {
	return From[T](v)
}

// TryFrom converts v to T, failing with a [*TryFromIntError] when v does not
// fit in T. Lossless pairs never fail. Pairs outside the relation set fail
// with an [*UnsupportedError].
func TryFrom[T, S Primitive](v S) (T, error) {
	if t, ok := any(v).(T); ok {
		return t, nil
	}

	return tryFrom[T](load(v))
}

// TryInto is the reciprocal of [TryFrom].
func TryInto[T, S Primitive](v S) (T, error) {
	return TryFrom[T](v)
}

// MustTryFrom is like [TryFrom] but panics on error.
func MustTryFrom[T, S Primitive](v S) T {
	t, err := TryFrom[T](v)
	if err != nil {
		panic(err)
	}

	return t
}

// TryFromValue converts the dynamically typed v to T under the same rules as
// [TryFrom]. Non-primitive values fail with an [*UnsupportedError].
func TryFromValue[T Primitive](v any) (T, error) {
	s, ok := loadValue(v)
	if !ok {
		var zero T
		return zero, &UnsupportedError{Target: KindOf[T](), Type: fmt.Sprintf("%T", v)}
	}

	return tryFrom[T](s)
}

// CanFrom reports whether a lossless conversion from S to T exists.
func CanFrom[T, S Primitive]() bool {
	return relation.Lookup(KindOf[S](), KindOf[T]()).Infallible()
}

// CanTryFrom reports whether any conversion from S to T exists.
func CanTryFrom[T, S Primitive]() bool {
	return relation.Lookup(KindOf[S](), KindOf[T]()).Fallible()
}

func tryFrom[T Primitive](s scalar) (T, error) {
	var zero T

	dst := KindOf[T]()
	switch relation.Lookup(s.kind, dst) {
	case relation.Identity, relation.Lossless:
		return emit[T](s), nil
	case relation.Bounded:
		if !s.fits(dst) {
			return zero, &TryFromIntError{Value: s.value(), Source: s.kind, Target: dst}
		}

		return emit[T](s), nil
	default:
		return zero, &UnsupportedError{Source: s.kind, Target: dst}
	}
}
