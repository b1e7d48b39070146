package bigint

import "bytes"

// mulAbs computes dest = |x| * |y| via shift-and-add: walk the bits of the
// smaller operand, and for each set bit at position k add (bigger << k)
// into the accumulator, per spec.md §4.F. x and y are snapshotted first so
// aliasing dest with either is safe.
func mulAbs(dest *Int, x, y *Int) {
	mulAbsTraced(dest, x, y, nil)
}

func mulAbsTraced(dest *Int, x, y *Int, tracer Tracer) {
	big := x.abs.clone()
	small := y.abs.clone()
	if compareAbs(small, big) > 0 {
		big, small = small, big
	}

	acc := &Int{abs: newMagZeros(1)}
	for k := 0; k < small.bitLen(); k++ {
		if !getLimbBit(small, k) {
			continue
		}
		shifted := &Int{abs: big.clone().shiftLeftBits(k)}
		addAbs(acc, acc, shifted)
		if tracer != nil {
			var b bytes.Buffer
			writeDecimal(&b, acc.abs.trim())
			tracer.MultiplyStep(MultiplyStep{BitIndex: k, Accumulator: b.String()})
		}
	}
	dest.abs = acc.abs.trim()
}

// getLimbBit reads bit k (0 = LSB of limb 0) of a little-endian magnitude.
func getLimbBit(m mag, k int) bool {
	limbIdx := k / 32
	if limbIdx >= len(m) {
		return false
	}
	return m[limbIdx]&(1<<uint(k%32)) != 0
}

// MulN sets z to the product of one or more factors, left-folding from a
// +1 accumulator, per spec.md §4.F. The result sign is the accumulated
// parity of the input signs, with the mandatory zero-product fix from
// spec.md §9: if the magnitude comes out zero, the sign is forced to 0
// regardless of how many negative factors were folded in.
func (z *Int) MulN(xs ...*Int) error {
	return z.MulNTraced(nil, xs...)
}

// MulNTraced is MulN with an optional Tracer notified of every set bit
// the shift-and-add kernel folds into the accumulator, across all
// factors in order.
func (z *Int) MulNTraced(tracer Tracer, xs ...*Int) error {
	if len(xs) == 0 {
		return newError(IncorrectFunctionArgument, "mul_n requires at least one operand")
	}
	acc := &Int{abs: newMagZeros(1)}
	acc.abs[0] = 1
	negCount := 0
	for _, x := range xs {
		mulAbsTraced(acc, acc, x, tracer)
		if x.neg {
			negCount++
		}
	}
	acc.neg = negCount%2 == 1
	acc.canonicalize()
	z.neg, z.abs = acc.neg, acc.abs
	return nil
}
