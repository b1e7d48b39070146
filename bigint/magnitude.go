package bigint

import "math/bits"

// mag is the unsigned magnitude: a little-endian sequence of 32-bit limbs.
// A contiguous growable slice was chosen over a linked chain of limb nodes
// (spec.md §9 allows either) because it maps directly onto Go's slice
// idiom and avoids a node allocation per limb.
//
// Invariants (I1-I2 of the value this magnitude backs):
//   - len(m) >= 1
//   - if len(m) > 1 then m[len(m)-1] != 0
type mag []uint32

// newMagZeros returns a magnitude of exactly k zeroed limbs. k must be >= 1.
func newMagZeros(k int) mag {
	return make(mag, k)
}

// clone returns a deep, independent copy preserving the exact limb count,
// including any transient non-canonical trailing zeros a caller may be
// carrying mid-algorithm.
func (m mag) clone() mag {
	out := make(mag, len(m))
	copy(out, m)
	return out
}

// reset zeroes every limb without changing the limb count.
func (m mag) reset() {
	for i := range m {
		m[i] = 0
	}
}

// appendHighZeros extends m by k zero limbs at the high end.
func (m mag) appendHighZeros(k int) mag {
	return append(m, make(mag, k)...)
}

// prependLowZeros shifts m left by 32*k bits by inserting k zero limbs at
// the low end.
func (m mag) prependLowZeros(k int) mag {
	if k == 0 {
		return m
	}
	out := make(mag, len(m)+k)
	copy(out[k:], m)
	return out
}

// trim removes trailing (high-end) zero limbs until I2 holds, or len==1.
func (m mag) trim() mag {
	n := len(m)
	for n > 1 && m[n-1] == 0 {
		n--
	}
	return m[:n]
}

// isZero reports whether the magnitude's value is 0. Assumes m is trimmed.
func (m mag) isZero() bool {
	return len(m) == 1 && m[0] == 0
}

// bitLen returns the number of bits needed to represent the magnitude's
// value, i.e. bit_length of the high limb plus 32 per limb below it.
// Assumes m is trimmed.
func (m mag) bitLen() int {
	n := len(m)
	if n == 1 && m[0] == 0 {
		return 0
	}
	return (n-1)*32 + bits.Len32(m[n-1])
}

// shiftLeft1 shifts the integer value left by 1 bit, growing by a limb if
// the previous high limb's top bit was set.
func (m mag) shiftLeft1() mag {
	var carry uint32
	for i := range m {
		next := m[i] >> 31
		m[i] = (m[i] << 1) | carry
		carry = next
	}
	if carry != 0 {
		m = append(m, carry)
	}
	return m
}

// shiftRight1 shifts right by 1 bit. If the high limb becomes zero and
// len(m) > 1, the limb is trimmed away.
func (m mag) shiftRight1() mag {
	var carry uint32
	for i := len(m) - 1; i >= 0; i-- {
		next := m[i] << 31
		m[i] = (m[i] >> 1) | carry
		carry = next
	}
	return m.trim()
}

// bitwiseNot complements every limb in place; length and sign are
// untouched by this primitive (the caller decides what sign means for the
// complemented value).
func (m mag) bitwiseNot() {
	for i := range m {
		m[i] = ^m[i]
	}
}

// shiftLeftBits applies shiftLeft1 k times, composed with prependLowZeros
// for the limb-aligned portion, as spec.md §4.F's multiply kernel requires.
func (m mag) shiftLeftBits(k int) mag {
	out := m.prependLowZeros(k / 32)
	for i := 0; i < k%32; i++ {
		out = out.shiftLeft1()
	}
	return out
}
