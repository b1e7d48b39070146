package bigint

// Big-endian scratch-array bit helpers shared by the decimal formatter's
// divide-by-10^9 primitive (format.go) and the long-division kernel
// (div.go). Both work over a fixed-length array of n limbs where index 0
// holds the most significant limb; "position i" follows spec.md §4.G's
// convention: position 0 is the least significant bit of the last
// (lowest-order) limb, and position n*32-1 is the most significant bit of
// the first limb.

func getBit(arr []uint32, n, i int) bool {
	limbIdx := n - 1 - i/32
	bitIdx := uint(i % 32)
	return arr[limbIdx]&(1<<bitIdx) != 0
}

func setBit(arr []uint32, n, i int, v bool) {
	limbIdx := n - 1 - i/32
	bitIdx := uint(i % 32)
	if v {
		arr[limbIdx] |= 1 << bitIdx
	} else {
		arr[limbIdx] &^= 1 << bitIdx
	}
}

// arrayShiftLeftOne shifts a big-endian n-limb array left by one bit,
// discarding the carry out of the top bit (the caller tracks it
// separately when it matters, as the divider does via the remainder
// register already having room).
func arrayShiftLeftOne(arr []uint32) {
	var carry uint32
	for i := len(arr) - 1; i >= 0; i-- {
		next := arr[i] >> 31
		arr[i] = (arr[i] << 1) | carry
		carry = next
	}
}

// arrayCompare performs a lexicographic (hence big-endian-correct)
// comparison of two equal-length big-endian arrays.
func arrayCompare(a, b []uint32) int {
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// arraySub computes a -= b for equal-length big-endian arrays known to
// satisfy a >= b, via the add-ones-complement-plus-one pattern spec.md
// §4.G specifies, ignoring the carry out of the top limb.
func arraySub(a, b []uint32) {
	n := len(a)
	negB := make([]uint32, n)
	copy(negB, b)
	for i := range negB {
		negB[i] = ^negB[i]
	}
	var carry uint64 = 1 // the "+1" half of two's-complement negation
	for i := n - 1; i >= 0; i-- {
		t := uint64(a[i]) + uint64(negB[i]) + carry
		a[i] = uint32(t)
		carry = t >> 32
	}
}
