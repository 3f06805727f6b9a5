package convert

import "go.dw1.io/constconv/internal/relation"

// scalar is a primitive value detached from its static type.
type scalar struct {
	kind relation.Kind
	bits uint64 // integers and bools; signed values in two's complement
	f    float64
}

func load[S Primitive](v S) scalar {
	s, _ := loadValue(v)
	return s
}

func loadValue(v any) (scalar, bool) {
	switch x := v.(type) {
	case bool:
		s := scalar{kind: relation.Bool}
		if x {
			s.bits = 1
		}

		return s, true
	case int8:
		return scalar{kind: relation.Int8, bits: uint64(int64(x))}, true
	case int16:
		return scalar{kind: relation.Int16, bits: uint64(int64(x))}, true
	case int32:
		return scalar{kind: relation.Int32, bits: uint64(int64(x))}, true
	case int64:
		return scalar{kind: relation.Int64, bits: uint64(x)}, true
	case int:
		return scalar{kind: relation.Int, bits: uint64(int64(x))}, true
	case uint8:
		return scalar{kind: relation.Uint8, bits: uint64(x)}, true
	case uint16:
		return scalar{kind: relation.Uint16, bits: uint64(x)}, true
	case uint32:
		return scalar{kind: relation.Uint32, bits: uint64(x)}, true
	case uint64:
		return scalar{kind: relation.Uint64, bits: x}, true
	case uint:
		return scalar{kind: relation.Uint, bits: uint64(x)}, true
	case uintptr:
		return scalar{kind: relation.Uintptr, bits: uint64(x)}, true
	case float32:
		return scalar{kind: relation.Float32, f: float64(x)}, true
	case float64:
		return scalar{kind: relation.Float64, f: x}, true
	default:
		return scalar{}, false
	}
}

// fits reports whether s is representable in the integer kind dst. Sign is
// covered by the range check.
func (s scalar) fits(dst relation.Kind) bool {
	if !dst.IsInteger() {
		return true
	}

	if s.kind.IsSigned() {
		i := int64(s.bits)
		if dst.IsSigned() {
			return i >= dst.Min() && i <= int64(dst.Max())
		}

		return i >= 0 && uint64(i) <= dst.Max()
	}

	return s.bits <= dst.Max()
}

func (s scalar) float() float64 {
	switch {
	case s.kind.IsFloat():
		return s.f
	case s.kind.IsSigned():
		return float64(int64(s.bits))
	default:
		return float64(s.bits)
	}
}

// value rebuilds the original typed value.
func (s scalar) value() any {
	switch s.kind {
	case relation.Bool:
		return s.bits != 0
	case relation.Int8:
		return int8(s.bits)
	case relation.Int16:
		return int16(s.bits)
	case relation.Int32:
		return int32(s.bits)
	case relation.Int64:
		return int64(s.bits)
	case relation.Int:
		return int(s.bits)
	case relation.Uint8:
		return uint8(s.bits)
	case relation.Uint16:
		return uint16(s.bits)
	case relation.Uint32:
		return uint32(s.bits)
	case relation.Uint64:
		return s.bits
	case relation.Uint:
		return uint(s.bits)
	case relation.Uintptr:
		return uintptr(s.bits)
	case relation.Float32:
		return float32(s.f)
	case relation.Float64:
		return s.f
	default:
		return nil
	}
}

// emit stores s into a T. Callers must have checked the relation and range.
func emit[T Primitive](s scalar) T {
	var t T
	switch p := any(&t).(type) {
	case *bool:
		*p = s.bits != 0
	case *int8:
		*p = int8(s.bits)
	case *int16:
		*p = int16(s.bits)
	case *int32:
		*p = int32(s.bits)
	case *int64:
		*p = int64(s.bits)
	case *int:
		*p = int(s.bits)
	case *uint8:
		*p = uint8(s.bits)
	case *uint16:
		*p = uint16(s.bits)
	case *uint32:
		*p = uint32(s.bits)
	case *uint64:
		*p = s.bits
	case *uint:
		*p = uint(s.bits)
	case *uintptr:
		*p = uintptr(s.bits)
	case *float32:
		*p = float32(s.float())
	case *float64:
		*p = s.float()
	}

	return t
}
