package convert

import "unsafe"

// AsRef returns p as a shared reference to T. It never copies.
func AsRef[T any](p *T) *T {
	return p
}

// AsMut returns p as a mutable reference to T. It never copies.
func AsMut[T any](p *T) *T {
	return p
}

// SliceRef views s as a plain []E sharing the same backing array.
func SliceRef[S ~[]E, E any](s S) []E {
	return s
}

// SliceMut views s as a plain []E through which the elements of s may be
// modified.
func SliceMut[S ~[]E, E any](s S) []E {
	return s
}

// StringBytes views the bytes of s without copying. The returned slice must
// not be modified.
func StringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString views b as a string without copying. b must not be modified
// while the string is in use.
func BytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
