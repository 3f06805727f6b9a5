package cast

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"go.dw1.io/constconv/convert"
)

// To converts v to type T.
func To[T Type](v any) (T, error) {
	var zero T

	switch t := any(zero).(type) {
	case int:
		return toPrimitiveOrBase[T, int](v)
	case int8:
		return toPrimitiveOrBase[T, int8](v)
	case int16:
		return toPrimitiveOrBase[T, int16](v)
	case int32:
		return toPrimitiveOrBase[T, int32](v)
	case int64:
		return toPrimitiveOrBase[T, int64](v)
	case uint:
		return toPrimitiveOrBase[T, uint](v)
	case uint8:
		return toPrimitiveOrBase[T, uint8](v)
	case uint16:
		return toPrimitiveOrBase[T, uint16](v)
	case uint32:
		return toPrimitiveOrBase[T, uint32](v)
	case uint64:
		return toPrimitiveOrBase[T, uint64](v)
	case uintptr:
		if !isPrimitiveVal(v) {
			return zero, fmt.Errorf("unsupported conversion to %T from %T", t, v)
		}

		return toPrimitive[T, uintptr](v)
	case bool:
		return toPrimitiveOrBase[T, bool](v)
	case float32:
		return toPrimitiveOrBase[T, float32](v)
	case float64:
		return toPrimitiveOrBase[T, float64](v)
	case string:
		return toBase[T, string](v)
	case time.Time:
		return toBase[T, time.Time](v)
	case time.Duration:
		return toBase[T, time.Duration](v)
	default:
		return zero, fmt.Errorf("unsupported conversion to %T", t)
	}
}

// ToMust converts v to type T and panics on error.
func ToMust[T Type](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// toPrimitive converts to the primitive type P through the relation table
// and then re-types the result as T (which is the caller's type parameter).
func toPrimitive[T any, P convert.Primitive](v any) (T, error) {
	converted, err := convert.TryFromValue[P](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toBase converts to the basic type B using spf13/cast and re-types the
// result as T (which is the caller's type parameter).
func toBase[T any, B Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toPrimitiveOrBase converts v to the primitive type P. Primitive sources go
// through the relation table, anything else through cast.ToE.
func toPrimitiveOrBase[T any, P IntersectionType](v any) (T, error) {
	if isPrimitiveVal(v) {
		return toPrimitive[T, P](v)
	}

	return toBase[T, P](v)
}

// isPrimitiveType reports whether the type argument T is one of the types
// routed through the relation table.
func isPrimitiveType[T any]() bool {
	return convert.ValueKind(any(*new(T))) != convert.Invalid
}

// isPrimitiveVal reports whether v's dynamic type is a primitive known to the
// relation table.
func isPrimitiveVal(v any) bool {
	return convert.ValueKind(v) != convert.Invalid
}
