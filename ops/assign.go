package ops

// AddAssign performs *p += b.
func AddAssign[T Number](p *T, b T) {
	*p += b
}

// SubAssign performs *p -= b.
func SubAssign[T Number](p *T, b T) {
	*p -= b
}

// MulAssign performs *p *= b.
func MulAssign[T Number](p *T, b T) {
	*p *= b
}

// DivAssign performs *p /= b.
func DivAssign[T Number](p *T, b T) {
	*p /= b
}

// RemAssign stores the remainder of *p / b in *p, as [Rem].
func RemAssign[T Number](p *T, b T) {
	*p = Rem(*p, b)
}

// BitAndAssign performs *p &= b.
func BitAndAssign[T Integer](p *T, b T) {
	*p &= b
}

// BitOrAssign performs *p |= b.
func BitOrAssign[T Integer](p *T, b T) {
	*p |= b
}

// BitXorAssign performs *p ^= b.
func BitXorAssign[T Integer](p *T, b T) {
	*p ^= b
}

// ShlAssign performs *p <<= n.
func ShlAssign[T, N Integer](p *T, n N) {
	*p <<= n
}

// ShrAssign performs *p >>= n.
func ShrAssign[T, N Integer](p *T, n N) {
	*p >>= n
}

// LogicalAndAssign performs *p = *p && b.
func LogicalAndAssign(p *bool, b bool) {
	*p = LogicalAnd(*p, b)
}

// LogicalOrAssign performs *p = *p || b.
func LogicalOrAssign(p *bool, b bool) {
	*p = LogicalOr(*p, b)
}

// LogicalXorAssign performs *p = *p != b.
func LogicalXorAssign(p *bool, b bool) {
	*p = LogicalXor(*p, b)
}
