// Package simd provides the hex kernels and the runtime selection that picks
// one for the process.
//
// Every kernel implements the same operation set (encode, check,
// decode-checked, decode-unchecked) and agrees byte-for-byte with the portable
// scalar kernel. Kernels process whole vector windows and hand any remainder
// shorter than one window to the scalar code, using the same chunk
// decomposition everywhere so tail sizes behave identically across backends.
//
// The vector algorithms are expressed against lane-accurate models of the
// instructions they were designed for (SSE2/SSSE3/AVX2 shuffles and packs,
// NEON table lookups and unzips, wasm swizzles). All kernels are compiled on
// every platform, which lets tests run each backend on any machine. These
// models run as Go loops, so the default is the 64-bit SWAR kernel; the
// vector kernels are chosen by name through Config.
//
// Example:
//
//	k := simd.Active()
//	dst := make([]byte, 2*len(src))
//	k.Encode(dst, src, false)
package simd

import (
	"fmt"

	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/internal/lut"
	"github.com/coregx/fasthex/sink"
)

// Kernel is one backend's implementation of the hex operations.
type Kernel interface {
	// Name identifies the kernel ("generic", "swar", "sse2", "ssse3", "avx2",
	// "neon", "wasm").
	Name() string

	// Width is the kernel's vector register width in bytes. Inputs shorter
	// than one window take the scalar path.
	Width() int

	// ValidateFirst reports the decode policy: true means Check the whole
	// input and then DecodeUnchecked; false means DecodeChecked validates
	// inline.
	ValidateFirst() bool

	// Encode writes 2*len(src) hex digits into dst.
	// dst must hold at least 2*len(src) bytes.
	Encode(dst, src []byte, upper bool)

	// Check reports whether every byte of src is a hex digit.
	Check(src []byte) bool

	// DecodeChecked decodes src into dst and reports false on invalid input,
	// leaving dst unspecified. len(dst) must equal len(src)/2.
	DecodeChecked(dst, src []byte) bool

	// DecodeUnchecked decodes src, which must already be known to be valid.
	DecodeUnchecked(dst, src []byte)
}

// scratchSize is the number of output bytes EncodeTo stages before flushing.
const scratchSize = 512

// EncodeTo encodes src through k into any sink. Output is staged in a fixed
// stack block so the sink sees a few large writes instead of one per byte.
// Bounded sinks must have room for the whole encoding.
func EncodeTo(k Kernel, w sink.Sink, src []byte, upper bool) {
	if n, bounded := w.Remaining(); bounded && n < 2*len(src) {
		panic(fmt.Sprintf("simd: sink has %d bytes left, encoding needs %d", n, 2*len(src)))
	}
	if s, ok := w.(*sink.Slice); ok {
		// Fixed slices are the hot path: encode straight into them.
		k.Encode(s.Next(2*len(src)), src, upper)
		return
	}
	var block [scratchSize]byte
	for len(src) > 0 {
		n := min(len(src), scratchSize/2)
		k.Encode(block[:2*n], src[:n], upper)
		w.Put(block[:2*n])
		src = src[n:]
	}
}

// Decode runs the decode state machine for k: validate-first kernels check
// the whole input and then decode unchecked, the others decode with inline
// validation. On false, dst is unspecified and must be discarded.
func Decode(k Kernel, dst, src []byte) bool {
	if k.ValidateFirst() {
		if !k.Check(src) {
			return false
		}
		k.DecodeUnchecked(dst, src)
		return true
	}
	return k.DecodeChecked(dst, src)
}

func checkEncodeLen(dst, src []byte) {
	if len(dst) < 2*len(src) {
		panic(fmt.Sprintf("simd: encode output too small: %d < %d", len(dst), 2*len(src)))
	}
}

func checkDecodeLen(dst, src []byte) {
	if len(dst) != len(src)/2 {
		panic(fmt.Sprintf("simd: decode output length %d, want %d", len(dst), len(src)/2))
	}
}

// genericKernel is the portable scalar backend.
type genericKernel struct{}

func (genericKernel) Name() string        { return "generic" }
func (genericKernel) Width() int          { return 1 }
func (genericKernel) ValidateFirst() bool { return false }

func (genericKernel) Encode(dst, src []byte, upper bool) {
	generic.Encode(dst, src, lut.Chars(upper))
}

func (genericKernel) Check(src []byte) bool {
	return generic.Check(src)
}

func (genericKernel) DecodeChecked(dst, src []byte) bool {
	return generic.DecodeChecked(dst, src)
}

func (genericKernel) DecodeUnchecked(dst, src []byte) {
	generic.DecodeUnchecked(dst, src)
}
