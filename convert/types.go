package convert

import "go.dw1.io/constconv/internal/relation"

// Signed is a constraint that matches the signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is a constraint that matches the unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Integer is a constraint that matches every integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that matches the floating-point types.
type Float interface {
	float32 | float64
}

// Number is a constraint that matches every integer and floating-point type.
type Number interface {
	Integer | Float
}

// Primitive is a constraint that matches every type taking part in
// conversions. Named types are deliberately excluded.
type Primitive interface {
	Number | bool
}

// Kind identifies a primitive type.
type Kind = relation.Kind

const (
	Invalid = relation.Invalid
	Bool    = relation.Bool
	Int8    = relation.Int8
	Int16   = relation.Int16
	Int32   = relation.Int32
	Int64   = relation.Int64
	Int     = relation.Int
	Uint8   = relation.Uint8
	Uint16  = relation.Uint16
	Uint32  = relation.Uint32
	Uint64  = relation.Uint64
	Uint    = relation.Uint
	Uintptr = relation.Uintptr
	Float32 = relation.Float32
	Float64 = relation.Float64
)

// KindOf returns the kind of the primitive type T.
func KindOf[T Primitive]() Kind {
	var zero T
	return load(zero).kind
}

// ValueKind returns the kind of v's dynamic type, or [Invalid] when v is not
// a primitive.
func ValueKind(v any) Kind {
	s, ok := loadValue(v)
	if !ok {
		return Invalid
	}

	return s.kind
}
