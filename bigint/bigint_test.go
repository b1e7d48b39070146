package bigint

import (
	"strings"
	"testing"
)

// TestScenarios exercises the literal end-to-end scenarios from spec.md §8.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"binary to decimal", func(t *testing.T) {
			v := mustParse(t, "0b101010")
			if got := v.Text(DEC); got != "42" {
				t.Errorf("Text(DEC) = %q, want 42", got)
			}
		}},
		{"negative hex", func(t *testing.T) {
			v := mustParse(t, "-0xFF")
			if got := v.Text(HEX); got != "-0xff" {
				t.Errorf("Text(HEX) = %q, want -0xff", got)
			}
			if got := v.Text(DEC); got != "-255" {
				t.Errorf("Text(DEC) = %q, want -255", got)
			}
		}},
		{"large decimal to hex", func(t *testing.T) {
			v := mustParse(t, "123456789012345678901234567890")
			if got := v.Text(HEX); got != "0x18ee90ff6c373e0ee4e3f0ad2" {
				t.Errorf("Text(HEX) = %q, want 0x18ee90ff6c373e0ee4e3f0ad2", got)
			}
		}},
		{"large subtraction", func(t *testing.T) {
			a := mustParse(t, "1000000000000000000000")
			b := mustParse(t, "1")
			d := New()
			if err := d.Sub(a, b); err != nil {
				t.Fatal(err)
			}
			if got := d.Text(DEC); got != "999999999999999999999" {
				t.Errorf("Text(DEC) = %q, want 999999999999999999999", got)
			}
		}},
		{"truncated division", func(t *testing.T) {
			a := mustParse(t, "-7")
			b := mustParse(t, "3")
			q, m := New(), New()
			if err := QuoRem(a, b, q, m); err != nil {
				t.Fatal(err)
			}
			if got := q.Text(DEC); got != "-2" {
				t.Errorf("quotient = %q, want -2", got)
			}
			if got := m.Text(DEC); got != "-1" {
				t.Errorf("remainder = %q, want -1", got)
			}
		}},
		{"multiply", func(t *testing.T) {
			a := mustParse(t, "0xFFFFFFFFFFFFFFFF")
			b := mustParse(t, "2")
			p := New()
			if err := p.MulN(a, b); err != nil {
				t.Fatal(err)
			}
			if got := p.Text(HEX); got != "0x1fffffffffffffffe" {
				t.Errorf("Text(HEX) = %q, want 0x1fffffffffffffffe", got)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func mustParse(t *testing.T, s string) *Int {
	t.Helper()
	v, err := ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", s, err)
	}
	return v
}

// TestRoundTripNumeral is P2: print(base, create(s)) canonicalizes back
// to s modulo leading '+', hex case and prefix casing.
func TestRoundTripNumeral(t *testing.T) {
	cases := []struct{ in, base string }{
		{"0", "dec"}, {"123", "dec"}, {"-123", "dec"},
		{"0x1a2b3c", "hex"}, {"-0xFF", "hex"},
		{"0b1010", "bin"}, {"-0b11110000", "bin"},
	}
	bases := map[string]Base{"dec": DEC, "hex": HEX, "bin": BIN}
	for _, c := range cases {
		v := mustParse(t, c.in)
		got := v.Text(bases[c.base])
		// None of the inputs carries a '+', so the canonical text is the
		// input lower-cased (hex digits and base prefix).
		if want := strings.ToLower(c.in); got != want {
			t.Errorf("round trip %q -> %q, want %q", c.in, got, want)
		}
		v2 := mustParse(t, got)
		if v.Cmp(v2) != 0 {
			t.Errorf("round trip %q -> %q -> value mismatch", c.in, got)
		}
	}
}

func TestInvariantsAfterOps(t *testing.T) {
	zero, err := ParseString("-0")
	if err != nil {
		t.Fatal(err)
	}
	if zero.Sign() != 0 {
		t.Error("negative zero must canonicalize to sign 0 (I3)")
	}
	if len(zero.abs) != 1 || zero.abs[0] != 0 {
		t.Errorf("zero magnitude should be [0], got %v", []uint32(zero.abs))
	}
}

func TestParseRejectsAmbiguousLeadingZero(t *testing.T) {
	for _, s := range []string{"0123", "00", "01"} {
		if _, err := ParseString(s); err == nil {
			t.Errorf("ParseString(%q) should fail", s)
		}
	}
}

func TestShiftConsistency(t *testing.T) {
	v := mustParse(t, "123456789")
	orig := v.Copy()
	if err := v.ShiftLeft(10); err != nil {
		t.Fatal(err)
	}
	mul := New()
	thousand24 := mustParse(t, "1024")
	if err := mul.MulN(orig, thousand24); err != nil {
		t.Fatal(err)
	}
	if v.Cmp(mul) != 0 {
		t.Errorf("shift left 10 != * 1024: %s vs %s", v.Text(DEC), mul.Text(DEC))
	}

	v2 := mustParse(t, "123456789")
	if err := v2.ShiftRight(3); err != nil {
		t.Fatal(err)
	}
	q, r := New(), New()
	eight := mustParse(t, "8")
	if err := QuoRem(orig, eight, q, r); err != nil {
		t.Fatal(err)
	}
	if v2.Cmp(q) != 0 {
		t.Errorf("shift right 3 != / 8: %s vs %s", v2.Text(DEC), q.Text(DEC))
	}
}
