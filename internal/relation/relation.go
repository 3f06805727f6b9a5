package relation

// Version is the revision of the mirrored standard conversion set. Bump it
// whenever a row is added to or removed from the tables below.
const Version = 1

// Relation classifies how a source kind converts into a target kind.
type Relation uint8

const (
	// None means no conversion exists between the two kinds.
	None Relation = iota
	// Identity is the reflexive conversion of a kind into itself.
	Identity
	// Lossless conversions always succeed and preserve the value exactly.
	Lossless
	// Bounded conversions succeed only when the value lies in the target's
	// range.
	Bounded
)

var relationNames = [...]string{
	None:     "none",
	Identity: "identity",
	Lossless: "lossless",
	Bounded:  "bounded",
}

// String returns the name of r.
func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}

	return "invalid"
}

// Infallible reports whether conversions under r always succeed.
func (r Relation) Infallible() bool {
	return r == Identity || r == Lossless
}

// Fallible reports whether r admits a fallible conversion. Every infallible
// relation is also usable fallibly.
func (r Relation) Fallible() bool {
	return r != None
}

// Pair is an ordered (source, target) kind pair.
type Pair struct {
	Source Kind
	Target Kind
}

// lossless lists every infallible conversion besides identity. 128-bit rows
// have no Go counterpart; uintptr follows the usize rows.
var lossless = map[Kind][]Kind{
	Bool: {
		Int8, Int16, Int32, Int64, Int,
		Uint8, Uint16, Uint32, Uint64, Uint, Uintptr,
		Float32, Float64,
	},

	Uint8:  {Uint16, Uint32, Uint64, Uint, Uintptr, Int16, Int32, Int64, Int, Float32, Float64},
	Uint16: {Uint32, Uint64, Uint, Uintptr, Int32, Int64, Float32, Float64},
	Uint32: {Uint64, Int64, Float64},

	Int8:  {Int16, Int32, Int64, Int, Float32, Float64},
	Int16: {Int32, Int64, Int, Float32, Float64},
	Int32: {Int64, Float64},

	Float32: {Float64},
}

// bounded lists every range-checked conversion. Pointer-sized kinds are
// always bounded toward fixed-width kinds they might not fit on some
// platform, whatever the width of the running one.
var bounded = map[Kind][]Kind{
	// signed to unsigned and narrower signed
	Int8:  {Uint8, Uint16, Uint32, Uint64, Uint, Uintptr},
	Int16: {Int8, Uint8, Uint16, Uint32, Uint64, Uint, Uintptr},
	Int32: {Int8, Int16, Int, Uint8, Uint16, Uint32, Uint64, Uint, Uintptr},
	Int64: {Int8, Int16, Int32, Int, Uint8, Uint16, Uint32, Uint64, Uint, Uintptr},
	Int:   {Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Uint, Uintptr},

	// unsigned to narrower unsigned and signed
	Uint8:   {Int8},
	Uint16:  {Uint8, Int8, Int16, Int},
	Uint32:  {Uint8, Uint16, Uint, Uintptr, Int8, Int16, Int32, Int},
	Uint64:  {Uint8, Uint16, Uint32, Uint, Uintptr, Int8, Int16, Int32, Int64, Int},
	Uint:    {Uint8, Uint16, Uint32, Uint64, Uintptr, Int8, Int16, Int32, Int64, Int},
	Uintptr: {Uint8, Uint16, Uint32, Uint64, Uint, Int8, Int16, Int32, Int64, Int},
}

var table [numKinds][numKinds]Relation

func init() {
	for k := Bool; k < numKinds; k++ {
		table[k][k] = Identity
	}

	for src, dsts := range lossless {
		for _, dst := range dsts {
			set(src, dst, Lossless)
		}
	}

	for src, dsts := range bounded {
		for _, dst := range dsts {
			set(src, dst, Bounded)
		}
	}
}

func set(src, dst Kind, r Relation) {
	if prev := table[src][dst]; prev != None {
		panic("relation: duplicate row " + src.String() + " -> " + dst.String() +
			" (" + prev.String() + ", " + r.String() + ")")
	}

	table[src][dst] = r
}

// Lookup returns the relation from src to dst.
func Lookup(src, dst Kind) Relation {
	if !src.Valid() || !dst.Valid() {
		return None
	}

	return table[src][dst]
}

// Pairs returns every non-identity pair related by r, ordered by source and
// then target kind.
func Pairs(r Relation) []Pair {
	var pairs []Pair
	for src := Bool; src < numKinds; src++ {
		for dst := Bool; dst < numKinds; dst++ {
			if src != dst && table[src][dst] == r {
				pairs = append(pairs, Pair{Source: src, Target: dst})
			}
		}
	}

	return pairs
}
