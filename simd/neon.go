package simd

import (
	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/internal/lut"
)

// neonKernel is the AArch64 Advanced SIMD backend. It decodes with an inline
// validity mask and bails out on the first bad window instead of running a
// separate check pass.
type neonKernel struct{}

const neonWidth = 16

func (neonKernel) Name() string        { return "neon" }
func (neonKernel) Width() int          { return neonWidth }
func (neonKernel) ValidateFirst() bool { return false }

func (neonKernel) Encode(dst, src []byte, upper bool) {
	checkEncodeLen(dst, src)
	table := lut.Chars(upper)
	if len(src) < neonWidth {
		generic.Encode(dst, src, table)
		return
	}
	hexTable := Vec128(*table)
	generic.EncodeChunks(dst, src, neonWidth, table, func(d, chunk []byte) {
		in := load128(chunk)
		lo := vqtbl1q(hexTable, vandq(in, vdupq(0x0F)))
		hi := vqtbl1q(hexTable, vshrqN(in, 4))

		first := vzip1q(hi, lo)
		second := vzip2q(hi, lo)
		first.store(d)
		second.store(d[16:])
	})
}

func (neonKernel) Check(src []byte) bool {
	if len(src) < neonWidth {
		return generic.Check(src)
	}
	return generic.CheckChunks(src, neonWidth, func(chunk []byte) bool {
		in := load128(chunk)
		validDigit := vandq(vcgeq(in, vdupq('0')), vcleq(in, vdupq('9')))
		validUpper := vandq(vcgeq(in, vdupq('A')), vcleq(in, vdupq('F')))
		validLower := vandq(vcgeq(in, vdupq('a')), vcleq(in, vdupq('f')))
		valid := vorrq(validDigit, vorrq(validLower, validUpper))
		return vminvq(valid) == 0xFF
	})
}

// DecodeChecked splits 32 characters into high and low digit registers with
// vuzp, converts both and stops at the first window with an invalid lane.
func (neonKernel) DecodeChecked(dst, src []byte) bool {
	checkDecodeLen(dst, src)
	if len(src) < 2*neonWidth {
		return generic.DecodeChecked(dst, src)
	}
	return generic.DecodeChunks(dst, src, 2*neonWidth, func(d, chunk []byte) bool {
		c0 := load128(chunk)
		c1 := load128(chunk[16:])

		hiNib, hiValid := unhexNEON(vuzp1q(c0, c1))
		loNib, loValid := unhexNEON(vuzp2q(c0, c1))
		if vminvq(vandq(hiValid, loValid)) != 0xFF {
			return false
		}
		out := vorrq(vshlqN(hiNib, 4), loNib)
		out.store(d)
		return true
	})
}

// DecodeUnchecked reuses the checked path; the inline mask costs nothing
// extra here.
func (k neonKernel) DecodeUnchecked(dst, src []byte) {
	k.DecodeChecked(dst, src)
}

// unhexNEON returns the nibble value of every lane and a mask of the lanes
// that hold a hex digit.
func unhexNEON(chars Vec128) (nibble, valid Vec128) {
	zero := vdupq('0')
	asciiA := vdupq('a')

	digitVal := vsubq(chars, zero)
	isDigit := vandq(vcgeq(chars, zero), vcleq(chars, vdupq('9')))

	lower := vorrq(chars, vdupq(0x20))
	letterVal := vaddq(vsubq(lower, asciiA), vdupq(10))
	isLetter := vandq(vcgeq(lower, asciiA), vcleq(lower, vdupq('f')))

	return vbslq(isDigit, digitVal, letterVal), vorrq(isDigit, isLetter)
}
