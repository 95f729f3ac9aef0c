package simd

import (
	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/internal/lut"
)

// x86Kernel covers the three x86 tiers. Each tier enables the algorithms its
// instruction set supports and falls back to the narrower tier below it:
//   - sse2:  16-byte range-compare Check; scalar Encode and Decode
//   - ssse3: adds the 16-byte pshufb Encode
//   - avx2:  adds the 32-byte Encode, the signed-overflow Check and the
//     64-to-32 byte Decode
//
// All x86 tiers validate first and then decode unchecked.
type x86Kernel struct {
	name  string
	ssse3 bool
	avx2  bool
}

var (
	sse2Kernel  = &x86Kernel{name: "sse2"}
	ssse3Kernel = &x86Kernel{name: "ssse3", ssse3: true}
	avx2Kernel  = &x86Kernel{name: "avx2", ssse3: true, avx2: true}
)

func (k *x86Kernel) Name() string { return k.name }

func (k *x86Kernel) Width() int {
	if k.avx2 {
		return 32
	}
	return 16
}

func (k *x86Kernel) ValidateFirst() bool { return true }

// Encode writes 32 hex digits per 16 input bytes when a shuffle unit is
// available.
func (k *x86Kernel) Encode(dst, src []byte, upper bool) {
	checkEncodeLen(dst, src)
	table := lut.Chars(upper)
	if len(src) < 16 || !k.ssse3 {
		generic.Encode(dst, src, table)
		return
	}
	if k.avx2 {
		lookup := vbroadcasti128(Vec128(*table))
		generic.EncodeChunks(dst, src, 16, table, func(d, chunk []byte) {
			out := vpshufb(lookup, byte2nib(load128(chunk)))
			out.store(d)
		})
		return
	}
	lookup := Vec128(*table)
	generic.EncodeChunks(dst, src, 16, table, func(d, chunk []byte) {
		lo, hi := encodeSSSE3(lookup, load128(chunk))
		lo.store(d)
		hi.store(d[16:])
	})
}

// encodeSSSE3 translates both nibbles of every byte through lookup and
// interleaves them as [hi0, lo0, hi1, lo1, ...] across two registers.
func encodeSSSE3(lookup, in Vec128) (Vec128, Vec128) {
	lo := pand(in, splat128(0x0F))
	hi := psrld(pand(in, splat128(0xF0)), 4)
	lo = pshufb(lookup, lo)
	hi = pshufb(lookup, hi)
	return punpcklbw(hi, lo), punpckhbw(hi, lo)
}

// byte2nib widens 16 bytes into 16 words holding [b>>4, b&0xF], which is the
// output digit order once each byte is looked up.
func byte2nib(in Vec128) Vec256 {
	rot2 := Vec256{
		0x80, 0, 0x80, 2, 0x80, 4, 0x80, 6, 0x80, 8, 0x80, 10, 0x80, 12, 0x80, 14,
		0x80, 0, 0x80, 2, 0x80, 4, 0x80, 6, 0x80, 8, 0x80, 10, 0x80, 12, 0x80, 14,
	}
	doubled := vpmovzxbw(in)
	hi := vpsrlw(doubled, 4)
	lo := vpshufb(doubled, rot2)
	return vpand(vpor(hi, lo), splat256(0x0F))
}

// Check dispatches by length: 32-byte windows with the signed-overflow test,
// then 16-byte range compares, then the scalar check.
func (k *x86Kernel) Check(src []byte) bool {
	if k.avx2 && len(src) >= 32 {
		body, tail := generic.Split(src, 32)
		for i := 0; i < len(body); i += 32 {
			if !checkAVX2(load256(body[i:])) {
				return false
			}
		}
		return checkSSE2Chunks(tail)
	}
	return checkSSE2Chunks(src)
}

func checkSSE2Chunks(src []byte) bool {
	if len(src) < 16 {
		return generic.Check(src)
	}
	return generic.CheckChunks(src, 16, func(chunk []byte) bool {
		return checkSSE2(load128(chunk))
	})
}

// checkSSE2 ORs three signed range compares (digit, upper, lower). Bytes
// >= 0x80 are negative as int8 and fail every lower bound.
func checkSSE2(v Vec128) bool {
	gt0 := pcmpgtb(v, splat128('0'-1))
	lt9 := pcmpgtb(splat128('9'+1), v)
	validDigit := pand(gt0, lt9)

	gtUA := pcmpgtb(v, splat128('A'-1))
	ltUF := pcmpgtb(splat128('F'+1), v)
	gtLA := pcmpgtb(v, splat128('a'-1))
	ltLF := pcmpgtb(splat128('f'+1), v)

	validLetter := por(pand(gtLA, ltLF), pand(gtUA, ltUF))
	return pmovmskb(por(validDigit, validLetter)) == 0xFFFF
}

// checkAVX2 is the signed-overflow variant: each range is shifted so its
// lower bound becomes -128, turning "lo <= c <= hi" into one signed
// "c' < -128+(hi-lo+1)" compare. Folding case with |0x20 merges the two
// letter ranges, leaving two compares instead of six.
func checkAVX2(v Vec256) bool {
	digit := vpaddb(v, splat256(0x80-'0'))
	validDigit := vpcmpgtb(splat256(0x80+10), digit)

	letter := vpaddb(vpor(v, splat256(0x20)), splat256(0x80-'a'))
	validLetter := vpcmpgtb(splat256(0x80+6), letter)

	return vpmovmskb(vpor(validDigit, validLetter)) == 0xFFFFFFFF
}

// DecodeChecked is not on the x86 decode path (ValidateFirst is true); it is
// kept correct for direct callers.
func (k *x86Kernel) DecodeChecked(dst, src []byte) bool {
	checkDecodeLen(dst, src)
	if !k.Check(src) {
		return false
	}
	k.DecodeUnchecked(dst, src)
	return true
}

// DecodeUnchecked converts 64 characters into 32 bytes per window on AVX2.
// Narrower tiers decode with the scalar table.
func (k *x86Kernel) DecodeUnchecked(dst, src []byte) {
	checkDecodeLen(dst, src)
	if !k.avx2 || len(src) < 64 {
		generic.DecodeUnchecked(dst, src)
		return
	}
	generic.DecodeUncheckedChunks(dst, src, 64, func(d, chunk []byte) {
		out := decodeAVX2(load256(chunk), load256(chunk[32:]))
		out.store(d)
	})
}

var (
	// Even characters into the low byte of each word.
	maskEven = Vec256{
		0, 0x80, 2, 0x80, 4, 0x80, 6, 0x80, 8, 0x80, 10, 0x80, 12, 0x80, 14, 0x80,
		0, 0x80, 2, 0x80, 4, 0x80, 6, 0x80, 8, 0x80, 10, 0x80, 12, 0x80, 14, 0x80,
	}
	// Odd characters into the low byte of each word.
	maskOdd = Vec256{
		1, 0x80, 3, 0x80, 5, 0x80, 7, 0x80, 9, 0x80, 11, 0x80, 13, 0x80, 15, 0x80,
		1, 0x80, 3, 0x80, 5, 0x80, 7, 0x80, 9, 0x80, 11, 0x80, 13, 0x80, 15, 0x80,
	}
)

func decodeAVX2(av1, av2 Vec256) Vec256 {
	a1 := unhexAVX2(vpshufb(av1, maskEven))
	b1 := unhexAVX2(vpshufb(av1, maskOdd))
	a2 := unhexAVX2(vpshufb(av2, maskEven))
	b2 := unhexAVX2(vpshufb(av2, maskOdd))
	return nib2byte(a1, b1, a2, b2)
}

// unhexAVX2 converts word lanes holding one character each into nibbles:
// c>>6 is 1 only for letters, so vpmaddubsw by 9 produces the letter offset
// that is added to c&0xF.
func unhexAVX2(v Vec256) Vec256 {
	sr6 := vpsraw(v, 6)
	and15 := vpand(v, splatWord256(0x000F))
	mul := vpmaddubsw(sr6, splatWord256(9))
	return vpaddw(mul, and15)
}

// nib2byte merges (a<<4)|b word lanes from both halves of the input into 32
// packed bytes. vpackuswb interleaves the 128-bit halves, so vpermq 0b11011000
// restores input order.
func nib2byte(a1, b1, a2, b2 Vec256) Vec256 {
	ab1 := vpor(vpsllw(a1, 4), b1)
	ab2 := vpor(vpsllw(a2, 4), b2)
	return vpermq(vpackuswb(ab1, ab2), 0b11_01_10_00)
}
