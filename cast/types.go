package cast

import (
	"github.com/spf13/cast"

	"go.dw1.io/constconv/convert"
)

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// Primitive is an alias for [convert.Primitive].
type Primitive = convert.Primitive

// IntersectionType is a type constraint that matches types that are both
// [cast.Basic] and [convert.Primitive].
type IntersectionType interface {
	cast.Basic
	convert.Primitive
}

// Type is a constraint that matches all types supported by [To].
type Type interface {
	Basic | Primitive
}
