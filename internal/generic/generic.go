// Package generic implements the portable scalar hex kernels.
//
// These functions are the reference semantics for every vectorized kernel in
// package simd, and they handle the tail bytes that do not fill a whole
// vector window.
package generic

import (
	"fmt"

	"github.com/coregx/fasthex/internal/lut"
)

// Encode writes the hex encoding of src into dst, high nibble first.
// dst must hold at least 2*len(src) bytes.
func Encode(dst, src []byte, table *[16]byte) {
	if len(dst) < 2*len(src) {
		panic(fmt.Sprintf("generic: encode output too small: %d < %d", len(dst), 2*len(src)))
	}
	for i, b := range src {
		dst[2*i] = table[b>>4]
		dst[2*i+1] = table[b&0x0F]
	}
}

// Check reports whether every byte of src is a hex digit.
func Check(src []byte) bool {
	for _, c := range src {
		if lut.Decode[c] == lut.Invalid {
			return false
		}
	}
	return true
}

// FirstInvalid returns the index of the first byte in src that is not a hex
// digit, or -1 if there is none.
func FirstInvalid(src []byte) int {
	for i, c := range src {
		if lut.Decode[c] == lut.Invalid {
			return i
		}
	}
	return -1
}

// DecodeChecked decodes src into dst, validating every digit.
// It returns false on the first invalid digit; dst contents are then
// unspecified. len(dst) must equal len(src)/2.
func DecodeChecked(dst, src []byte) bool {
	checkDecodeLen(dst, src)
	for i := range dst {
		hi := lut.Decode[src[2*i]]
		lo := lut.Decode[src[2*i+1]]
		if hi == lut.Invalid || lo == lut.Invalid {
			return false
		}
		dst[i] = hi<<4 | lo
	}
	return true
}

// DecodeUnchecked decodes src into dst assuming src is valid hex, as
// established by a prior Check. Invalid input yields unspecified output but
// never an out-of-bounds access.
func DecodeUnchecked(dst, src []byte) {
	checkDecodeLen(dst, src)
	for i := range dst {
		dst[i] = lut.Decode[src[2*i]]<<4 | lut.Decode[src[2*i+1]]&0x0F
	}
}

func checkDecodeLen(dst, src []byte) {
	if len(dst) != len(src)/2 {
		panic(fmt.Sprintf("generic: decode output length %d, want %d", len(dst), len(src)/2))
	}
}
