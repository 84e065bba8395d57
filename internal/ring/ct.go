// ct.go - Constant-time byte utilities.
//
// The only data-dependent operations on secret material during
// decapsulation: comparing the re-encrypted ciphertext against the
// input, and selecting between the real and the rejection key. Named
// explicitly here rather than reached through crypto/subtle so the
// non-short-circuiting discipline is visible at the call site.

package ring

// CtByteDiff ORs together the pairwise XOR of a and b and returns 0 iff
// the two buffers are equal, without branching on any input byte. Both
// slices must have equal length; the caller is responsible for that
// invariant.
func CtByteDiff(a, b []byte) byte {
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v
}

// CtSelect overwrites out with a if choose is 0, or with b if choose is
// nonzero, in constant time with respect to choose and the contents of a
// and b. a, b, and out must have equal length.
func CtSelect(out, a, b []byte, choose byte) {
	// mask is all-ones when choose != 0, all-zeros otherwise, derived
	// without a data-dependent branch.
	mask := -subtleNonZero(choose)
	for i := range out {
		out[i] = (a[i] &^ mask) | (b[i] & mask)
	}
}

// subtleNonZero returns 1 if b != 0, 0 otherwise, without branching on b.
func subtleNonZero(b byte) byte {
	v := uint32(b)
	v |= v >> 4
	v |= v >> 2
	v |= v >> 1
	return byte(v & 1)
}
