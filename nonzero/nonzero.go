package nonzero

import (
	"errors"
	"strconv"

	"go.dw1.io/constconv/convert"
)

// Integer is an alias for [convert.Integer].
type Integer = convert.Integer

// Int is an integer of type T that is never zero. The zero value of Int is
// not valid; obtain one from [New], [MustNew] or [TryFromInt].
type Int[T Integer] struct {
	v T
}

// New returns v as an Int, or false if v is zero.
func New[T Integer](v T) (Int[T], bool) {
	if v == 0 {
		return Int[T]{}, false
	}

	return Int[T]{v: v}, true
}

// MustNew is like [New] but panics if v is zero.
func MustNew[T Integer](v T) Int[T] {
	n, err := TryFromInt(v)
	if err != nil {
		panic(err)
	}

	return n
}

// TryFromInt returns v as an Int, failing with a [*convert.TryFromIntError]
// that wraps [convert.ErrZero] when v is zero.
func TryFromInt[T Integer](v T) (Int[T], error) {
	n, ok := New(v)
	if !ok {
		k := convert.KindOf[T]()
		return Int[T]{}, &convert.TryFromIntError{
			Value:   v,
			Source:  k,
			Target:  k,
			NonZero: true,
			Zero:    true,
		}
	}

	return n, nil
}

// Get returns the integer value of n.
func (n Int[T]) Get() T {
	return n.v
}

// String formats n in base 10.
func (n Int[T]) String() string {
	if convert.KindOf[T]().IsSigned() {
		return strconv.FormatInt(int64(n.v), 10)
	}

	return strconv.FormatUint(uint64(n.v), 10)
}

// From converts n to a non-zero T losslessly. It panics with a
// [*convert.UnsupportedError] when no lossless conversion from S to T exists.
func From[T, S Integer](n Int[S]) Int[T] {
	return Int[T]{v: convert.From[T](n.v)}
}

// TryFrom converts n to a non-zero T, failing with a
// [*convert.TryFromIntError] when n does not fit in T.
func TryFrom[T, S Integer](n Int[S]) (Int[T], error) {
	v, err := convert.TryFrom[T](n.v)
	if err != nil {
		var rangeErr *convert.TryFromIntError
		if errors.As(err, &rangeErr) {
			rangeErr.NonZero = true
		}

		return Int[T]{}, err
	}

	return Int[T]{v: v}, nil
}
