// Package bigint implements signed arbitrary-precision integers: parsing
// from and formatting to base 2/10/16 textual numerals, fixed-width binary
// interop, comparison, bit manipulation and the four arithmetic operations.
//
// An Int is independently owned storage; every method that produces a
// result writes into a caller-provided receiver, discarding whatever that
// receiver held before. Aliasing a destination with one of its own inputs
// (z.AddN(z, y)) is always safe — operations snapshot their inputs before
// writing the destination.
package bigint

import "unsafe"

// Base selects a numeral system for parsing and formatting.
type Base int

const (
	BIN Base = iota
	DEC
	HEX
	// other signals a parse failure; it is never a valid input to Append.
	other
)

// Int is a signed arbitrary-precision integer. The zero value is not a
// valid Int; use New, ParseString or FromBytes to obtain one.
type Int struct {
	neg bool
	abs mag
}

// New returns a new Int with value 0.
func New() *Int {
	return &Int{abs: newMagZeros(1)}
}

// Copy returns a deep, independent clone of x.
func (x *Int) Copy() *Int {
	return &Int{neg: x.neg, abs: x.abs.clone()}
}

// Set overwrites z with a deep copy of x's value and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	z.neg = x.neg
	z.abs = x.abs.clone()
	return z
}

// Sign returns 0 for a non-negative value (including zero) and 1 for a
// negative value, per spec.md's get_sign.
func (x *Int) Sign() int {
	if x.neg {
		return 1
	}
	return 0
}

// IsZero reports whether x's value is the mathematical integer 0.
func (x *Int) IsZero() bool {
	return x.abs.isZero()
}

// ChangeSign flips the sign of x. A no-op on zero (I3: zero is always
// non-negative), matching spec.md's permitted no-op-on-zero semantics.
func (x *Int) ChangeSign() *Int {
	if !x.abs.isZero() {
		x.neg = !x.neg
	}
	return x
}

// AbsoluteValue clears x's sign, in place.
func (x *Int) AbsoluteValue() *Int {
	x.neg = false
	return x
}

// BitwiseNot complements every limb of x's magnitude in place. Per
// spec.md §6 this does not alter sign or limb count — it is a raw
// limb-level primitive, not two's-complement negation.
func (x *Int) BitwiseNot() *Int {
	x.abs.bitwiseNot()
	return x
}

// canonicalize restores I3 (no negative zero). Call after any mutation
// that might have produced a zero magnitude with a negative sign.
func (z *Int) canonicalize() *Int {
	z.abs = z.abs.trim()
	if z.abs.isZero() {
		z.neg = false
	}
	return z
}

// NumLimbs returns the number of 32-bit limbs backing x's magnitude. Not
// part of the normative public surface; a debugging/introspection
// convenience in the spirit of the original's bigint_get_len, used by
// tests.
func (x *Int) NumLimbs() int {
	return len(x.abs)
}

// DebugLimbs returns a copy of x's limbs, low-to-high. Read-only
// introspection, mirroring the original implementation's raw limb dump
// used to debug the formatter itself.
func (x *Int) DebugLimbs() []uint32 {
	out := make([]uint32, len(x.abs))
	copy(out, x.abs)
	return out
}

// Size reports x's storage footprint in bytes: the header plus one
// 4-byte limb per word, matching spec.md §6's size(v).
func (x *Int) Size() int {
	return int(unsafe.Sizeof(*x)) + len(x.abs)*4
}
