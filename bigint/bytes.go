package bigint

import (
	"encoding/binary"
	"unsafe"
)

// nativeOrder is detected once at package init, the same spirit as the
// source's runtime host-endianness probe (spec.md §9): the abstract
// contract is that the concatenation of a destination buffer's 32-bit
// words, taken in increasing address order, spells the magnitude
// low-limb-first — decoding each word with the host's actual byte order
// keeps that contract true on both little- and big-endian hosts.
var nativeOrder = detectNativeOrder()

func detectNativeOrder() binary.ByteOrder {
	var probe = [2]byte{0x01, 0x00}
	if *(*uint16)(unsafe.Pointer(&probe[0])) == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// FromBytes interprets buf as a sequence of native-endian 32-bit words —
// the word at the lowest address is the least-significant limb — and
// returns a new non-negative Int. byte_len must be a multiple of 4.
func FromBytes(buf []byte) (*Int, error) {
	if len(buf)%4 != 0 {
		return nil, newError(LengthIndivisibleByFour, "")
	}
	if len(buf) == 0 {
		return nil, newError(IncorrectFunctionArgument, "empty buffer")
	}
	n := len(buf) / 4
	abs := newMagZeros(n)
	for i := 0; i < n; i++ {
		abs[i] = nativeOrder.Uint32(buf[i*4 : i*4+4])
	}
	z := &Int{abs: abs.trim()}
	return z, nil
}

// PutHostInteger fills dst (a destination buffer whose length is a
// multiple of 4, treated as a sequence of native 32-bit words) with x's
// magnitude in the same low-first order. Sign is not preserved — the
// operation is defined purely on the magnitude, per spec.md §4.H. Returns
// TooLargeToConvert if x's magnitude does not fit in dst.
func (x *Int) PutHostInteger(dst []byte) error {
	if len(dst)%4 != 0 {
		return newError(LengthIndivisibleByFour, "")
	}
	capacity := len(dst) / 4
	if len(x.abs) > capacity {
		return newError(TooLargeToConvert, "")
	}
	for i := 0; i < capacity; i++ {
		var limb uint32
		if i < len(x.abs) {
			limb = x.abs[i]
		}
		nativeOrder.PutUint32(dst[i*4:i*4+4], limb)
	}
	return nil
}
