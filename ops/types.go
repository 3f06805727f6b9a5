package ops

// Signed is a constraint that matches signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that matches unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that matches integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that matches floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint that matches integer and floating-point types.
type Number interface {
	Integer | Float
}

// Negatable is a constraint that matches the types with a unary minus that
// is not a wraparound of an unsigned value.
type Negatable interface {
	Signed | Float
}
