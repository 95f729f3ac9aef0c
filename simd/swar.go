package simd

import (
	"encoding/binary"

	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/internal/lut"
)

// swarKernel is the portable-width fallback: SIMD Within A Register on
// 64-bit words, eight byte lanes at a time. It needs no CPU support and is the
// default on architectures without a dedicated vector kernel.
type swarKernel struct{}

const swarWidth = 8

const (
	ones = uint64(0x0101010101010101)
	hi8  = uint64(0x8080808080808080)
)

func broadcast(c byte) uint64 { return uint64(c) * ones }

func (swarKernel) Name() string        { return "swar" }
func (swarKernel) Width() int          { return swarWidth }
func (swarKernel) ValidateFirst() bool { return true }

// Encode handles eight input bytes per window, producing one 16-byte block
// from two 4-byte nibble spreads.
func (swarKernel) Encode(dst, src []byte, upper bool) {
	checkEncodeLen(dst, src)
	table := lut.Chars(upper)
	if len(src) < swarWidth {
		generic.Encode(dst, src, table)
		return
	}

	// Distance from '9'+1 to the first letter of the alphabet.
	adj := uint64('a' - '0' - 10)
	if upper {
		adj = 'A' - '0' - 10
	}

	generic.EncodeChunks(dst, src, swarWidth, table, func(d, chunk []byte) {
		binary.LittleEndian.PutUint64(d, swarHex(swarSpread(binary.LittleEndian.Uint32(chunk)), adj))
		binary.LittleEndian.PutUint64(d[8:], swarHex(swarSpread(binary.LittleEndian.Uint32(chunk[4:])), adj))
	})
}

// swarSpread places the nibbles of four bytes into eight byte lanes, high
// nibble first: lane 2i = b[i]>>4, lane 2i+1 = b[i]&0xF.
func swarSpread(v uint32) uint64 {
	x := uint64(v)
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	hi := (x >> 4) & 0x000F000F000F000F
	lo := (x & 0x000F000F000F000F) << 8
	return hi | lo
}

// swarHex maps eight nibble lanes to ASCII digits without branches. Lanes
// holding 10..15 get an extra adj so they land on the letter range.
func swarHex(n, adj uint64) uint64 {
	// n+0x76 sets bit 7 exactly when n >= 10; n <= 15 so no lane carries.
	letter := ((n + broadcast(0x76)) >> 7) & ones
	return n + broadcast('0') + letter*adj
}

// Check validates eight bytes per window with the signed-overflow range test.
func (swarKernel) Check(src []byte) bool {
	if len(src) < swarWidth {
		return generic.Check(src)
	}
	return generic.CheckChunks(src, swarWidth, func(chunk []byte) bool {
		return swarValid(binary.LittleEndian.Uint64(chunk))
	})
}

// swarValid reports whether all eight byte lanes of x are hex digits.
//
// Each range test biases the lane so that the lower bound lands on 0x80 and
// reads bit 7 after one add. Bit 7 of the input is cleared first so no add can
// carry into the next lane; lanes that had it set are rejected at the end.
// Letters are case-folded with |0x20, which maps exactly 'A'..'F' and
// 'a'..'f' onto 'a'..'f'.
func swarValid(x uint64) bool {
	x7 := x &^ hi8
	geDigit := x7 + broadcast(0x80-'0')
	gtDigit := x7 + broadcast(0x80-('9'+1))
	l := x7 | broadcast(0x20)
	geAlpha := l + broadcast(0x80-'a')
	gtAlpha := l + broadcast(0x80-('f'+1))

	valid := (geDigit &^ gtDigit) | (geAlpha &^ gtAlpha)
	valid &^= x
	return valid&hi8 == hi8
}

// DecodeChecked decodes sixteen characters per window, validating each word
// before converting it.
func (swarKernel) DecodeChecked(dst, src []byte) bool {
	checkDecodeLen(dst, src)
	if len(src) < 2*swarWidth {
		return generic.DecodeChecked(dst, src)
	}
	return generic.DecodeChunks(dst, src, 2*swarWidth, func(d, chunk []byte) bool {
		a := binary.LittleEndian.Uint64(chunk)
		b := binary.LittleEndian.Uint64(chunk[8:])
		if !swarValid(a) || !swarValid(b) {
			return false
		}
		binary.LittleEndian.PutUint32(d, swarUnhex(a))
		binary.LittleEndian.PutUint32(d[4:], swarUnhex(b))
		return true
	})
}

// DecodeUnchecked decodes sixteen already-validated characters per window.
func (swarKernel) DecodeUnchecked(dst, src []byte) {
	checkDecodeLen(dst, src)
	if len(src) < 2*swarWidth {
		generic.DecodeUnchecked(dst, src)
		return
	}
	generic.DecodeUncheckedChunks(dst, src, 2*swarWidth, func(d, chunk []byte) {
		binary.LittleEndian.PutUint32(d, swarUnhex(binary.LittleEndian.Uint64(chunk)))
		binary.LittleEndian.PutUint32(d[4:], swarUnhex(binary.LittleEndian.Uint64(chunk[8:])))
	})
}

// swarUnhex converts eight valid hex characters into four bytes.
//
// Bit 6 is set only for letters, so nibble = (c & 0xF) + 9*bit6. Each even
// lane is then merged with its odd neighbour and the even lanes are packed
// into the low 32 bits.
func swarUnhex(x uint64) uint32 {
	alpha := (x >> 6) & ones
	n := x&broadcast(0x0F) + alpha*9
	t := (n<<4 | n>>8) & 0x00FF00FF00FF00FF
	t = (t | t>>8) & 0x0000FFFF0000FFFF
	t = (t | t>>16) & 0x00000000FFFFFFFF
	return uint32(t)
}
