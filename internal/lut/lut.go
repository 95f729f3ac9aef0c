// Package lut holds the immutable lookup tables shared by every hex kernel.
//
// The tables are built once during package initialization and never written
// again, so they can be read concurrently without synchronization.
package lut

// Invalid marks a byte that is not a hex digit in the Decode table.
// No nibble value (0-15) can collide with it.
const Invalid byte = 0xFF

// Lower is the lowercase encode alphabet.
var Lower = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// Upper is the uppercase encode alphabet.
var Upper = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}

// Decode maps every input byte to its nibble value, or Invalid.
var Decode = makeDecode()

func makeDecode() [256]byte {
	var t [256]byte
	for i := 0; i < 256; i++ {
		c := byte(i)
		switch {
		case c >= '0' && c <= '9':
			t[i] = c - '0'
		case c >= 'A' && c <= 'F':
			t[i] = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			t[i] = c - 'a' + 10
		default:
			t[i] = Invalid
		}
	}
	return t
}

// Chars returns the encode alphabet for the requested case.
func Chars(upper bool) *[16]byte {
	if upper {
		return &Upper
	}
	return &Lower
}
