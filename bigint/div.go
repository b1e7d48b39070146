package bigint

import (
	"bytes"
	"math/bits"
)

// QuoRem implements spec.md §4.G/§6's divide(D, R, Q, M): truncating
// (toward zero) division with a remainder that carries the dividend's
// sign. At least one of q, m must be non-nil.
//
// The general case runs the bit-serial binary long division spec.md §4.G
// specifies over big-endian scratch limb arrays — deliberately not a
// schoolbook/Knuth algorithm, so the remainder-sign and truncation
// contracts match the reference implementation bit-for-bit.
func QuoRem(D, R *Int, q, m *Int) error {
	return QuoRemTraced(D, R, q, m, nil)
}

// QuoRemTraced is QuoRem with an optional Tracer notified of every bit
// position the long-division kernel processes once it falls through to
// the general case (the fast paths for |D|<|R| and |D|==|R| don't loop,
// so they never call the tracer).
func QuoRemTraced(D, R *Int, q, m *Int, tracer Tracer) error {
	if q == nil && m == nil {
		return newError(IncorrectFunctionArgument, "divide requires at least one of quotient or remainder")
	}
	if R.abs.isZero() {
		return newError(DivisionByZero, "")
	}

	c := compareAbs(D.abs, R.abs)
	if c < 0 {
		if q != nil {
			q.neg, q.abs = false, newMagZeros(1)
		}
		if m != nil {
			m.neg, m.abs = D.neg, D.abs.clone()
		}
		return nil
	}
	if c == 0 {
		if q != nil {
			q.neg, q.abs = D.neg != R.neg, mag{1}
		}
		if m != nil {
			m.neg, m.abs = false, newMagZeros(1)
		}
		return nil
	}

	n := len(D.abs)
	dArr := make([]uint32, n) // big-endian copy of D
	for i := 0; i < n; i++ {
		dArr[i] = D.abs[n-1-i]
	}
	rArr := make([]uint32, n) // R zero-padded to n limbs, big-endian
	rn := len(R.abs)
	for i := 0; i < rn; i++ {
		rArr[n-1-i] = R.abs[i]
	}

	remArr := make([]uint32, n)
	quoArr := make([]uint32, n)

	top := (n-1)*32 + bits.Len32(dArr[0]) - 1
	for i := top; i >= 0; i-- {
		arrayShiftLeftOne(remArr)
		if getBit(dArr, n, i) {
			remArr[n-1] |= 1
		}
		bitSet := false
		if arrayCompare(remArr, rArr) >= 0 {
			arraySub(remArr, rArr)
			setBit(quoArr, n, i, true)
			bitSet = true
		}
		if tracer != nil {
			tracer.DivisionStep(DivisionStep{
				BitIndex:    i,
				QuotientBit: bitSet,
				Remainder:   bigEndianMagText(remArr, n),
			})
		}
	}

	if q != nil {
		ql := make(mag, n)
		for i := 0; i < n; i++ {
			ql[i] = quoArr[n-1-i]
		}
		q.abs = ql.trim()
		q.neg = D.neg != R.neg
		q.canonicalize()
	}
	if m != nil {
		ml := make(mag, n)
		for i := 0; i < n; i++ {
			ml[i] = remArr[n-1-i]
		}
		m.abs = ml.trim()
		m.neg = D.neg
		m.canonicalize()
	}
	return nil
}

// bigEndianMagText renders a big-endian (index 0 = highest limb) scratch
// array as a decimal string, for Tracer callbacks that want to show the
// running remainder without exposing the kernel's internal layout.
func bigEndianMagText(arr []uint32, n int) string {
	ml := make(mag, n)
	for i := 0; i < n; i++ {
		ml[i] = arr[n-1-i]
	}
	var b bytes.Buffer
	writeDecimal(&b, ml.trim())
	return b.String()
}

