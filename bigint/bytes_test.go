package bigint

import "testing"

func TestBytesRoundTrip(t *testing.T) {
	v := mustParse(t, "123456789012345678901234567890")
	buf := make([]byte, v.NumLimbs()*4) // exact fit
	if err := v.PutHostInteger(buf); err != nil {
		t.Fatal(err)
	}
	back, err := FromBytes(buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(v) != 0 {
		t.Errorf("round trip mismatch: %s vs %s", back.Text(DEC), v.Text(DEC))
	}
}

func TestBytesOverLongReencodesSame(t *testing.T) {
	v := mustParse(t, "42")
	buf := make([]byte, 16) // over-long: 4 limbs for a 1-limb value
	mustOK(t, v.PutHostInteger(buf))
	back, err := FromBytes(buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(v) != 0 {
		t.Errorf("over-long round trip mismatch: %s vs %s", back.Text(DEC), v.Text(DEC))
	}
	if back.NumLimbs() != 1 {
		t.Errorf("over-long decode should trim high zero limbs, got %d limbs", back.NumLimbs())
	}
}

func TestFromBytesRejectsBadLength(t *testing.T) {
	if _, err := FromBytes([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected LengthIndivisibleByFour error")
	}
}

func TestPutHostIntegerTooLarge(t *testing.T) {
	v := mustParse(t, "123456789012345678901234567890")
	buf := make([]byte, 4) // 1 limb, value needs more
	if err := v.PutHostInteger(buf); err == nil {
		t.Fatal("expected TooLargeToConvert error")
	}
}
