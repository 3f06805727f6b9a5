package ops

// Adder is implemented by types with an Add method.
type Adder[T any] interface {
	Add(T) T
}

// Subtracter is implemented by types with a Sub method.
type Subtracter[T any] interface {
	Sub(T) T
}

// Multiplier is implemented by types with a Mul method.
type Multiplier[T any] interface {
	Mul(T) T
}

// Divider is implemented by types with a Div method.
type Divider[T any] interface {
	Div(T) T
}

// Negator is implemented by types with a Neg method.
type Negator[T any] interface {
	Neg() T
}

// AddOf returns a.Add(b).
func AddOf[T Adder[T]](a, b T) T { return a.Add(b) }

// SubOf returns a.Sub(b).
func SubOf[T Subtracter[T]](a, b T) T { return a.Sub(b) }

// MulOf returns a.Mul(b).
func MulOf[T Multiplier[T]](a, b T) T { return a.Mul(b) }

// DivOf returns a.Div(b).
func DivOf[T Divider[T]](a, b T) T { return a.Div(b) }

// NegOf returns a.Neg().
func NegOf[T Negator[T]](a T) T { return a.Neg() }
