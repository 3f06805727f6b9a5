package relation

import (
	"math"
	"strconv"
)

// Kind enumerates the primitive types that take part in conversions.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64

	numKinds
)

var kindNames = [numKinds]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int:     "int",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint:    "uint",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := Bool; k < numKinds; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// String returns the Go type name of k.
func (k Kind) String() string {
	if k >= numKinds {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Title returns the Go type name of k with its first letter upper-cased, as
// used in generated function names.
func (k Kind) Title() string {
	name := k.String()
	if name == "" {
		return name
	}

	return string(name[0]-'a'+'A') + name[1:]
}

// Valid reports whether k names a primitive type.
func (k Kind) Valid() bool {
	return k > Invalid && k < numKinds
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= Int8 && k <= Uintptr
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= Int8 && k <= Int
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// Min returns the smallest value representable by the integer kind k. It is
// 0 for unsigned kinds and for non-integer kinds.
func (k Kind) Min() int64 {
	switch k {
	case Int8:
		return math.MinInt8
	case Int16:
		return math.MinInt16
	case Int32:
		return math.MinInt32
	case Int64:
		return math.MinInt64
	case Int:
		return math.MinInt
	default:
		return 0
	}
}

// Max returns the largest value representable by the integer kind k. It is
// 0 for non-integer kinds.
func (k Kind) Max() uint64 {
	switch k {
	case Int8:
		return math.MaxInt8
	case Int16:
		return math.MaxInt16
	case Int32:
		return math.MaxInt32
	case Int64:
		return math.MaxInt64
	case Int:
		return math.MaxInt
	case Uint8:
		return math.MaxUint8
	case Uint16:
		return math.MaxUint16
	case Uint32:
		return math.MaxUint32
	case Uint64:
		return math.MaxUint64
	case Uint:
		return math.MaxUint
	case Uintptr:
		return uint64(^uintptr(0))
	default:
		return 0
	}
}
