package bigint

// addAbs computes dest = |x| + |y|, ignoring sign. x and y are snapshotted
// first so aliasing dest with either input is safe.
func addAbs(dest *Int, x, y *Int) {
	xm, ym := x.abs.clone(), y.abs.clone()
	if len(ym) > len(xm) {
		xm, ym = ym, xm
	}
	out := newMagZeros(len(xm) + 1)
	var carry uint64
	for i := 0; i < len(xm); i++ {
		var yi uint32
		if i < len(ym) {
			yi = ym[i]
		}
		t := uint64(xm[i]) + uint64(yi) + carry
		out[i] = uint32(t)
		carry = t >> 32
	}
	out[len(xm)] = uint32(carry)
	dest.abs = out.trim()
}

// incMag increments a magnitude by 1, growing it by a limb on overflow.
func incMag(m mag) mag {
	for i := range m {
		m[i]++
		if m[i] != 0 {
			return m
		}
	}
	return append(m, 1)
}

// subAbs computes dest = |m| - |s|, requiring |m| >= |s|. Implemented via
// m - s = m + ~s_padded + 1, spec.md §4.E's add-then-increment identity.
func subAbs(dest *Int, m, s *Int) {
	mm := m.abs.clone()
	sm := s.abs.clone()
	for len(sm) < len(mm) {
		sm = append(sm, 0)
	}
	sm.bitwiseNot()

	out := newMagZeros(len(mm) + 1)
	var carry uint64
	for i := 0; i < len(mm); i++ {
		t := uint64(mm[i]) + uint64(sm[i]) + carry
		out[i] = uint32(t)
		carry = t >> 32
	}
	out[len(mm)] = uint32(carry)
	out = incMag(out)[:len(mm)] // +1, then drop the carry-out limb
	dest.abs = out.trim()
}

// decAbs decrements a non-zero magnitude's value by 1 via m + (~0...~0),
// spec.md §4.E's dec_abs identity.
func decAbs(m mag) mag {
	ones := newMagZeros(len(m))
	for i := range ones {
		ones[i] = ^uint32(0)
	}
	out := newMagZeros(len(m) + 1)
	var carry uint64
	for i := 0; i < len(m); i++ {
		t := uint64(m[i]) + uint64(ones[i]) + carry
		out[i] = uint32(t)
		carry = t >> 32
	}
	// carry-out limb (out[len(m)]) is discarded per the identity.
	return out[:len(m)].trim()
}

// AddN sets z to the sum of one or more addends, left-folding with the
// signed add table of spec.md §4.E. z may alias any addend.
func (z *Int) AddN(xs ...*Int) error {
	if len(xs) == 0 {
		return newError(IncorrectFunctionArgument, "add_n requires at least one operand")
	}
	acc := xs[0].Copy()
	for _, x := range xs[1:] {
		acc = signedAdd(acc, acc, x)
	}
	z.neg, z.abs = acc.neg, acc.abs
	return nil
}

// signedAdd implements spec.md §4.E's signed-add dispatch table into a
// fresh Int (dest may alias x or y; both are read before dest is touched).
func signedAdd(dest, x, y *Int) *Int {
	result := &Int{}
	switch {
	case !x.neg && !y.neg:
		addAbs(result, x, y)
		result.neg = false
	case x.neg && y.neg:
		addAbs(result, x, y)
		result.neg = true
	default:
		c := compareAbs(x.abs, y.abs)
		if c == 0 {
			result.abs = newMagZeros(1)
			result.neg = false
		} else if c > 0 {
			subAbs(result, x, y)
			result.neg = x.neg
		} else {
			subAbs(result, y, x)
			result.neg = y.neg
		}
	}
	result.canonicalize()
	dest.neg, dest.abs = result.neg, result.abs
	return dest
}

// Sub sets z = m - s following spec.md §4.E's signed-subtract table (the
// mathematically correct one; see DESIGN.md's Open Question decision).
func (z *Int) Sub(m, s *Int) error {
	result := &Int{}
	switch {
	case !m.neg && !s.neg:
		c := compareAbs(m.abs, s.abs)
		if c >= 0 {
			subAbs(result, m, s)
			result.neg = false
		} else {
			subAbs(result, s, m)
			result.neg = true
		}
	case !m.neg && s.neg:
		addAbs(result, m, s)
		result.neg = false
	case m.neg && !s.neg:
		addAbs(result, m, s)
		result.neg = true
	default: // m.neg && s.neg
		c := compareAbs(m.abs, s.abs)
		if c > 0 {
			subAbs(result, m, s)
			result.neg = true
		} else {
			subAbs(result, s, m)
			result.neg = false
		}
	}
	result.canonicalize()
	z.neg, z.abs = result.neg, result.abs
	return nil
}

// Inc increments x by 1 in place, per spec.md §4.E's signed-increment
// mapping: positive values grow their magnitude, negative values shrink
// it (and -1 incremented lands on canonical zero).
func (x *Int) Inc() error {
	if !x.neg {
		x.abs = incMag(x.abs)
		return nil
	}
	if x.abs.isZero() {
		// unreachable: zero is never stored with neg=true (I3).
		x.neg = false
		x.abs = incMag(x.abs)
		return nil
	}
	x.abs = decAbs(x.abs)
	x.canonicalize()
	return nil
}

// Dec decrements x by 1 in place. Decrementing 0 yields -1; decrementing a
// positive value uses dec_abs; decrementing a negative value increments
// its magnitude, per spec.md §4.E.
func (x *Int) Dec() error {
	if x.abs.isZero() {
		x.neg = true
		x.abs = incMag(x.abs)
		return nil
	}
	if !x.neg {
		x.abs = decAbs(x.abs)
		x.canonicalize()
		return nil
	}
	x.abs = incMag(x.abs)
	return nil
}
