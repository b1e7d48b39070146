package bigint

import "testing"

func TestMulZeroSignCanonicalizes(t *testing.T) {
	// Open question fix (spec.md §9): an odd number of negative factors
	// with a zero among them must still yield sign 0.
	a := mustParse(t, "-5")
	zero := mustParse(t, "0")
	b := mustParse(t, "-3")
	z := New()
	if err := z.MulN(a, zero, b); err != nil {
		t.Fatal(err)
	}
	if z.Sign() != 0 {
		t.Errorf("zero product sign = %d, want 0", z.Sign())
	}
	if !z.IsZero() {
		t.Errorf("zero product value = %s, want 0", z.Text(DEC))
	}
}

func TestMulRingLaws(t *testing.T) {
	a := mustParse(t, "12345678901234567890")
	b := mustParse(t, "-987654321")
	c := mustParse(t, "42")

	ab, ba := New(), New()
	mustOK(t, ab.MulN(a, b))
	mustOK(t, ba.MulN(b, a))
	if ab.Cmp(ba) != 0 {
		t.Errorf("a*b != b*a")
	}

	abc1, abc2 := New(), New()
	mustOK(t, abc1.MulN(ab, c))
	bc := New()
	mustOK(t, bc.MulN(b, c))
	mustOK(t, abc2.MulN(a, bc))
	if abc1.Cmp(abc2) != 0 {
		t.Errorf("(a*b)*c != a*(b*c)")
	}

	// distributive law: a*(b+c) == a*b + a*c
	bPlusC := New()
	mustOK(t, bPlusC.AddN(b, c))
	lhs := New()
	mustOK(t, lhs.MulN(a, bPlusC))
	aTimesB, aTimesC := New(), New()
	mustOK(t, aTimesB.MulN(a, b))
	mustOK(t, aTimesC.MulN(a, c))
	rhs := New()
	mustOK(t, rhs.AddN(aTimesB, aTimesC))
	if lhs.Cmp(rhs) != 0 {
		t.Errorf("a*(b+c) != a*b+a*c: %s vs %s", lhs.Text(DEC), rhs.Text(DEC))
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
