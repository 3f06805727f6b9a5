// Package gen renders the typed conversion surface of package convert from
// the relation table.
//
// Every lossless pair gets a <Target>From<Source> function and every
// convertible pair gets a Try<Target>From<Source> function. Pairs outside the
// table get nothing, so calling them fails to compile.
package gen
