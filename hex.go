// Package fasthex provides hexadecimal encoding and decoding with
// interchangeable kernels selected at runtime.
//
// Every entry point runs the kernel chosen by package simd: the 64-bit SWAR
// kernel by default, or a named kernel (generic, sse2, ssse3, avx2, neon,
// wasm) from FASTHEX_BACKEND. All kernels produce identical output and
// identical errors, so the choice is invisible to callers apart from speed.
//
// Basic usage:
//
//	s := fasthex.Encode([]byte("kiwi")) // "6b697769"
//
//	b, err := fasthex.DecodeString("0x6b697769")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(b)) // "kiwi"
//
// Decoding accepts mixed case and an optional "0x" or "0X" prefix. Errors are
// one of ErrOddLength, *InvalidByteError or *BufferLengthError.
//
// Zero-allocation formatting:
//
//	fmt.Printf("%#x\n", fasthex.Display(hash)) // written straight into fmt
//
//	buf := fasthex.NewBuffer(32, true)
//	key := buf.Format(hash) // reuses buf's storage
//
// The kernel can be pinned with FASTHEX_BACKEND=<name> or disabled with
// FASTHEX_NOSIMD=1; see package simd.
package fasthex

import (
	"github.com/coregx/fasthex/internal/conv"
	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/simd"
	"github.com/coregx/fasthex/sink"
)

// Prefix is written by the prefixed encoders and stripped by the decoders.
const Prefix = "0x"

// Encode returns the lowercase hex encoding of src.
func Encode(src []byte) string {
	return string(encode(nil, src, false))
}

// EncodeUpper returns the uppercase hex encoding of src.
func EncodeUpper(src []byte) string {
	return string(encode(nil, src, true))
}

// EncodePrefixed returns "0x" followed by the lowercase encoding of src.
func EncodePrefixed(src []byte) string {
	return string(encode(prefixed(len(src)), src, false))
}

// EncodeUpperPrefixed returns "0x" followed by the uppercase encoding of src.
// The prefix stays lowercase.
func EncodeUpperPrefixed(src []byte) string {
	return string(encode(prefixed(len(src)), src, true))
}

func prefixed(n int) []byte {
	return append(make([]byte, 0, conv.PrefixedLen(n)), Prefix...)
}

// encode appends the encoding of src to dst, growing it at most once.
func encode(dst, src []byte, upper bool) []byte {
	n := len(dst)
	m := conv.EncodedLen(len(src))
	if cap(dst)-n < m {
		grown := make([]byte, n, n+m)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:n+m]
	simd.Active().Encode(dst[n:], src, upper)
	return dst
}

// EncodeToSlice writes the lowercase encoding of src into dst, which must be
// exactly EncodedLen(len(src)) bytes long.
func EncodeToSlice(dst, src []byte) error {
	return encodeToSlice(dst, src, false)
}

// EncodeToSliceUpper is EncodeToSlice with uppercase digits.
func EncodeToSliceUpper(dst, src []byte) error {
	return encodeToSlice(dst, src, true)
}

func encodeToSlice(dst, src []byte, upper bool) error {
	if want := conv.EncodedLen(len(src)); len(dst) != want {
		return &BufferLengthError{Want: want, Got: len(dst)}
	}
	simd.EncodeTo(simd.Active(), sink.NewSlice(dst), src, upper)
	return nil
}

// AppendEncode appends the lowercase encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	return appendEncode(dst, src, false)
}

// AppendEncodeUpper appends the uppercase encoding of src to dst.
func AppendEncodeUpper(dst, src []byte) []byte {
	return appendEncode(dst, src, true)
}

func appendEncode(dst, src []byte, upper bool) []byte {
	w := sink.NewAppend(dst)
	w.Grow(conv.EncodedLen(len(src)))
	simd.EncodeTo(simd.Active(), w, src, upper)
	return w.Bytes()
}

// Decode decodes hex text, with or without a "0x" prefix, into a new slice.
//
// Both cases are accepted and may be mixed. Empty input and a bare prefix
// decode to an empty slice.
func Decode(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	body, off := stripPrefix(src)
	dst := make([]byte, conv.DecodedLen(len(body)))
	if err := decode(simd.Active(), dst, body, off); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeString is Decode for a string.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// DecodeToSlice decodes src into dst, which must be exactly half as long as
// src without its prefix. On error the contents of dst are unspecified.
func DecodeToSlice(dst, src []byte) error {
	if len(src)%2 != 0 {
		return ErrOddLength
	}
	body, off := stripPrefix(src)
	if want := conv.DecodedLen(len(body)); len(dst) != want {
		return &BufferLengthError{Want: want, Got: len(dst)}
	}
	return decode(simd.Active(), dst, body, off)
}

// decode runs k and turns a failure into a located error. off is the number
// of prefix bytes stripped from the caller's input.
func decode(k simd.Kernel, dst, body []byte, off int) error {
	if simd.Decode(k, dst, body) {
		return nil
	}
	return invalidByte(body, off)
}

// invalidByte locates the first bad byte with a scalar scan so the reported
// position never depends on which kernel ran.
func invalidByte(body []byte, off int) error {
	i := generic.FirstInvalid(body)
	if i < 0 {
		panic("fasthex: kernel rejected valid input")
	}
	return &InvalidByteError{Char: body[i], Index: off + i}
}

// Valid reports whether every byte of src is a hex digit. It neither strips a
// prefix nor checks the length.
func Valid(src []byte) bool {
	return simd.Active().Check(src)
}

// Check reports the error Decode would return for src, without decoding.
func Check(src []byte) error {
	if len(src)%2 != 0 {
		return ErrOddLength
	}
	body, off := stripPrefix(src)
	if simd.Active().Check(body) {
		return nil
	}
	return invalidByte(body, off)
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int {
	return conv.EncodedLen(n)
}

// DecodedLen returns the number of bytes n hex digits decode to. An odd n
// rounds down; Decode rejects such input with ErrOddLength.
func DecodedLen(n int) int {
	return conv.DecodedLen(n)
}

// Backend returns the name of the kernel in use, e.g. "swar".
func Backend() string {
	return simd.Active().Name()
}

// stripPrefix removes a leading "0x" or "0X" and returns how many bytes it
// removed.
func stripPrefix(src []byte) ([]byte, int) {
	if len(src) >= 2 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') {
		return src[2:], 2
	}
	return src, 0
}
