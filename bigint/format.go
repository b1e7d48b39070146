package bigint

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const decSuperBase = 1000000000 // 10^9

// Append formats x in the given base and appends the result to dst,
// returning the extended buffer, per spec.md §5.C. Text and WriteTo are
// both built on this: it's the one place that actually walks x's limbs.
func (x *Int) Append(dst []byte, base Base) []byte {
	b := bytes.NewBuffer(dst)
	x.writeTo(b, base)
	return b.Bytes()
}

// Text returns x formatted in the given base, per spec.md §4.C /§6:
// an optional '-', a base prefix ("0b"/"0x"/none), the most-significant
// digit group unpadded and every following group zero-padded to the
// group's full width.
func (x *Int) Text(base Base) string {
	return string(x.Append(nil, base))
}

// WriteTo emits x to sink in the given base and returns the number of
// bytes written, matching spec.md §6's print(sink, base, v).
func (x *Int) WriteTo(w io.Writer, base Base) (int64, error) {
	n, err := w.Write(x.Append(nil, base))
	return int64(n), err
}

func (x *Int) writeTo(b *bytes.Buffer, base Base) {
	if x.neg {
		b.WriteByte('-')
	}
	switch base {
	case BIN:
		b.WriteString("0b")
		writeGroups(b, x.abs, 32, formatBinGroup)
	case HEX:
		b.WriteString("0x")
		writeGroups(b, x.abs, 8, formatHexGroup)
	default:
		writeDecimal(b, x.abs)
	}
}

// writeGroups prints limbs from highest to lowest: the high limb without
// leading zeros, every subsequent limb zero-padded to width characters.
func writeGroups(b *bytes.Buffer, m mag, width int, format func(uint32) string) {
	n := len(m)
	s := format(m[n-1])
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	b.WriteString(trimmed)
	for i := n - 2; i >= 0; i-- {
		s := format(m[i])
		b.WriteString(strings.Repeat("0", width-len(s)) + s)
	}
}

func formatBinGroup(v uint32) string {
	s := ""
	for i := 31; i >= 0; i-- {
		if v&(1<<uint(i)) != 0 {
			s += "1"
		} else {
			s += "0"
		}
	}
	return s
}

func formatHexGroup(v uint32) string {
	return fmt.Sprintf("%08x", v)
}

// writeDecimal implements spec.md §4.C's decimal path: repeatedly divide
// the magnitude (as a big-endian scratch limb array) by 10^9, from the
// most significant bit down, producing one base-10^9 super-digit per
// division. The most significant non-zero super-digit is printed
// unpadded; every following one is zero-padded to 9 digits.
func writeDecimal(b *bytes.Buffer, m mag) {
	if m.isZero() {
		b.WriteByte('0')
		return
	}
	n := len(m)
	numDigits := (10*n + 1 + 8) / 9 // ceil((10n+1)/9)

	// big-endian copy: index 0 is the high limb.
	cur := make([]uint32, n)
	for i := 0; i < n; i++ {
		cur[i] = m[n-1-i]
	}

	superDigits := make([]uint32, numDigits)
	for k := numDigits - 1; k >= 0; k-- {
		q, r := divBigEndianBySmall(cur, decSuperBase)
		superDigits[k] = r
		cur = q
	}

	// suppress leading-zero super-digits from the over-allocation, then
	// print the first surviving one unpadded and the rest zero-padded.
	first := 0
	for first < numDigits-1 && superDigits[first] == 0 {
		first++
	}
	fmt.Fprintf(b, "%d", superDigits[first])
	for i := first + 1; i < numDigits; i++ {
		fmt.Fprintf(b, "%09d", superDigits[i])
	}
}

// divBigEndianBySmall divides the big-endian (high limb at index 0) limb
// array d by the small divisor, returning the quotient (same length) and
// the remainder, using the bit-serial shift/compare/subtract method
// spec.md §4.C mandates for the divide-by-10^9 primitive.
func divBigEndianBySmall(d []uint32, divisor uint32) ([]uint32, uint32) {
	n := len(d)
	q := make([]uint32, n)
	var rem uint32
	top := n*32 - 1
	for i := top; i >= 0; i-- {
		rem <<= 1
		if getBit(d, n, i) {
			rem |= 1
		}
		if rem >= divisor {
			rem -= divisor
			setBit(q, n, i, true)
		}
	}
	return q, rem
}
