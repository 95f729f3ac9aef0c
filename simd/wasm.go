package simd

import (
	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/internal/lut"
)

// wasmKernel is the WebAssembly simd128 backend. Only Encode and Check are
// vectorized; decoding uses the scalar table with inline validation.
type wasmKernel struct{}

const wasmWidth = 16

var (
	// Interleave lanes 0-7 of hi (0..15) with lanes 0-7 of lo (16..31).
	zipLow = [16]byte{0, 16, 1, 17, 2, 18, 3, 19, 4, 20, 5, 21, 6, 22, 7, 23}
	// Interleave lanes 8-15 of hi with lanes 8-15 of lo.
	zipHigh = [16]byte{8, 24, 9, 25, 10, 26, 11, 27, 12, 28, 13, 29, 14, 30, 15, 31}
)

func (wasmKernel) Name() string        { return "wasm" }
func (wasmKernel) Width() int          { return wasmWidth }
func (wasmKernel) ValidateFirst() bool { return false }

func (wasmKernel) Encode(dst, src []byte, upper bool) {
	checkEncodeLen(dst, src)
	table := lut.Chars(upper)
	if len(src) < wasmWidth {
		generic.Encode(dst, src, table)
		return
	}
	hexTable := Vec128(*table)
	generic.EncodeChunks(dst, src, wasmWidth, table, func(d, chunk []byte) {
		in := load128(chunk)
		lo := i8x16Swizzle(hexTable, v128And(in, u8x16Splat(0x0F)))
		hi := i8x16Swizzle(hexTable, u8x16Shr(in, 4))

		first := i8x16Shuffle(hi, lo, &zipLow)
		second := i8x16Shuffle(hi, lo, &zipHigh)
		first.store(d)
		second.store(d[16:])
	})
}

func (wasmKernel) Check(src []byte) bool {
	if len(src) < wasmWidth {
		return generic.Check(src)
	}
	return generic.CheckChunks(src, wasmWidth, func(chunk []byte) bool {
		in := load128(chunk)
		validDigit := v128And(u8x16Ge(in, u8x16Splat('0')), u8x16Le(in, u8x16Splat('9')))
		validUpper := v128And(u8x16Ge(in, u8x16Splat('A')), u8x16Le(in, u8x16Splat('F')))
		validLower := v128And(u8x16Ge(in, u8x16Splat('a')), u8x16Le(in, u8x16Splat('f')))
		return u8x16AllTrue(v128Or(validDigit, v128Or(validLower, validUpper)))
	})
}

func (wasmKernel) DecodeChecked(dst, src []byte) bool {
	return generic.DecodeChecked(dst, src)
}

func (wasmKernel) DecodeUnchecked(dst, src []byte) {
	generic.DecodeUnchecked(dst, src)
}
