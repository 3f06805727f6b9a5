package ops

import "math"

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}

// Sub returns a - b.
func Sub[T Number](a, b T) T {
	return a - b
}

// Mul returns a * b.
func Mul[T Number](a, b T) T {
	return a * b
}

// Div returns a / b. Integer division truncates toward zero and panics when
// b is zero.
func Div[T Number](a, b T) T {
	return a / b
}

// Rem returns the remainder of a / b, which takes the sign of a. For integers
// it is a % b and panics when b is zero. For floats it is [math.Mod]: NaN
// when b is zero, and exact for float32 as well.
func Rem[T Number](a, b T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}

	// a % b, which the Number type set does not admit.
	return a - (a/b)*b
}

// isFloat reports whether T has a floating-point underlying type.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// Neg returns -a.
func Neg[T Negatable](a T) T {
	return -a
}

// Not returns the bitwise complement of a.
func Not[T Integer](a T) T {
	return ^a
}

// LogicalNot returns !b.
func LogicalNot(b bool) bool {
	return !b
}

// LogicalAnd returns a && b. Both operands are evaluated by the caller, so
// nothing short-circuits.
func LogicalAnd(a, b bool) bool {
	return a && b
}

// LogicalOr returns a || b without short-circuiting.
func LogicalOr(a, b bool) bool {
	return a || b
}

// LogicalXor returns a != b.
func LogicalXor(a, b bool) bool {
	return a != b
}

// BitAnd returns a & b.
func BitAnd[T Integer](a, b T) T {
	return a & b
}

// BitOr returns a | b.
func BitOr[T Integer](a, b T) T {
	return a | b
}

// BitXor returns a ^ b.
func BitXor[T Integer](a, b T) T {
	return a ^ b
}

// Shl returns a << n. Counts at or beyond the width of T yield zero.
func Shl[T, N Integer](a T, n N) T {
	return a << n
}

// Shr returns a >> n. Signed values shift arithmetically.
func Shr[T, N Integer](a T, n N) T {
	return a >> n
}

// Sum folds xs with Add, starting from zero. It returns zero for an empty
// slice.
func Sum[T Number](xs ...T) T {
	var total T
	for _, x := range xs {
		total += x
	}

	return total
}
