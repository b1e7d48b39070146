package bigint

import (
	"bytes"
	"testing"
)

func TestAppendMatchesText(t *testing.T) {
	tests := []struct {
		name  string
		value string
		base  Base
	}{
		{"zero decimal", "0", DEC},
		{"positive decimal", "42", DEC},
		{"negative decimal", "-42", DEC},
		{"hex", "-0xFF", HEX},
		{"binary", "0b101010", BIN},
		{"large decimal", "123456789012345678901234567890", HEX},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := mustParse(t, tc.value)
			want := v.Text(tc.base)
			if got := string(v.Append(nil, tc.base)); got != want {
				t.Errorf("Append(nil, %v) = %q, want %q (Text)", tc.base, got, want)
			}
		})
	}
}

func TestAppendExtendsExistingBuffer(t *testing.T) {
	v := mustParse(t, "42")
	dst := []byte("ans = ")
	got := v.Append(dst, DEC)
	if string(got) != "ans = 42" {
		t.Errorf("Append(%q, DEC) = %q, want %q", dst, got, "ans = 42")
	}
}

func TestWriteToMatchesText(t *testing.T) {
	v := mustParse(t, "-123456789")
	var buf bytes.Buffer
	n, err := v.WriteTo(&buf, DEC)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if int(n) != buf.Len() {
		t.Errorf("WriteTo returned n=%d, buffer holds %d bytes", n, buf.Len())
	}
	if buf.String() != v.Text(DEC) {
		t.Errorf("WriteTo wrote %q, want %q", buf.String(), v.Text(DEC))
	}
}
