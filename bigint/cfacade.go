package bigint

import "io"

// cfacade.go offers status-code forms of create, release, print and
// divide as a thin layer over the idiomatic (*Int, error) API: Create
// returns nil on failure, Print and Divide return -1. The other
// operations exist only in their error-returning form. The layer is kept
// for fidelity to the original status-code contract; the error-returning
// API is the primary way callers are expected to use this package.

// Create parses a signed numeral and returns a new value, or nil on a
// malformed numeral (the last-error slot then holds IncorrectString).
func Create(s string) *Int {
	z, err := ParseString(s)
	if err != nil {
		return nil
	}
	return z
}

// Release is a documentation-only no-op: Go's garbage collector reclaims
// an Int's storage once it is unreachable, so there is nothing for this
// function to do beyond recording success. Kept because spec.md §6 lists
// release(v1,...,vk) as part of the normative surface callers may port
// code against.
func Release(_ ...*Int) int {
	return 0
}

// Print writes v to sink in the given base, returning -1 on failure.
func Print(sink io.Writer, base Base, v *Int) int {
	if _, err := v.WriteTo(sink, base); err != nil {
		setLastError(ErrorInDataStructure)
		return -1
	}
	return 0
}

// Divide is the status-returning form of QuoRem.
func Divide(D, R, qOpt, mOpt *Int) int {
	if err := QuoRem(D, R, qOpt, mOpt); err != nil {
		return -1
	}
	return 0
}
