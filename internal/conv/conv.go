// Package conv provides overflow-checked length arithmetic for the codec.
//
// These functions validate sizes before doubling or halving them. They panic
// on overflow since this indicates a programming error (e.g., a source slice
// whose encoding cannot be addressed on this platform).
package conv

import "math"

// EncodedLen returns 2*n, the number of hex digits for n bytes.
// Panics if n < 0 or 2*n overflows int.
//
//go:inline
func EncodedLen(n int) int {
	if n < 0 || n > math.MaxInt/2 {
		panic("integer overflow: encoded length out of int range")
	}
	return 2 * n
}

// PrefixedLen returns 2 + 2*n, the size of a "0x"-prefixed encoding.
// Panics if the result overflows int.
//
//go:inline
func PrefixedLen(n int) int {
	m := EncodedLen(n)
	if m > math.MaxInt-2 {
		panic("integer overflow: prefixed length out of int range")
	}
	return m + 2
}

// DecodedLen returns n/2, the number of bytes n hex digits decode to.
// The caller rejects odd n separately. Panics if n < 0.
//
//go:inline
func DecodedLen(n int) int {
	if n < 0 {
		panic("integer overflow: negative decoded length")
	}
	return n / 2
}
