package bigint

// ShiftLeft sets x to x * 2^k in place (k >= 0), per spec.md §6/P7.
func (x *Int) ShiftLeft(k int) error {
	if k < 0 {
		return newError(IncorrectFunctionArgument, "negative shift count")
	}
	x.abs = x.abs.shiftLeftBits(k)
	x.canonicalize()
	return nil
}

// ShiftRight sets x to floor(x / 2^k) in place for non-negative x
// (k >= 0): it drops k/32 whole low limbs, then applies shift_right_one
// for the remaining k%32 bits.
func (x *Int) ShiftRight(k int) error {
	if k < 0 {
		return newError(IncorrectFunctionArgument, "negative shift count")
	}
	drop := k / 32
	if drop >= len(x.abs) {
		x.abs = newMagZeros(1)
		return nil
	}
	x.abs = x.abs[drop:].clone()
	for i := 0; i < k%32; i++ {
		x.abs = x.abs.shiftRight1()
	}
	x.canonicalize()
	return nil
}
