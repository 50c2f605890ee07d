// Package ctsel implements the two data-oblivious selection primitives used
// by decapsulation: a byte-equality check and a conditional copy. Neither
// branches on, nor varies its memory-access pattern with, the values being
// compared or the selection condition.
//
// The guarantee is best-effort: it relies on the Go compiler not
// reintroducing secret-dependent branches when optimizing straight-line
// code, which holds for current compilers but is not formally specified.
package ctsel

import "crypto/subtle"

// Verify returns 1 if a and b differ anywhere, 0 if they are equal.
// Differences are accumulated across the full length; the comparison never
// short-circuits on the first mismatch. a and b must be the same length.
func Verify(a, b []byte) int {
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return subtle.ConstantTimeByteEq(acc, 0) ^ 1
}

// Cmov copies src into dst when cond is 1 and leaves dst untouched when cond
// is 0. Every byte of dst is visited either way; the selection happens
// through a bitmask rather than a branch. dst and src must be the same
// length and cond must be 0 or 1.
func Cmov(dst, src []byte, cond int) {
	mask := byte(-cond)
	for i := range dst {
		dst[i] ^= mask & (dst[i] ^ src[i])
	}
}
