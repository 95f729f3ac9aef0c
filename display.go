package fasthex

import (
	"fmt"

	"github.com/coregx/fasthex/simd"
	"github.com/coregx/fasthex/sink"
)

// Formatter prints a byte slice as hex through the fmt verbs without building
// an intermediate string.
//
// Supported verbs:
//   - %x, %s, %v: lowercase digits
//   - %X: uppercase digits
//
// The '#' flag writes a "0x" prefix for both cases.
//
// Example:
//
//	b := []byte{0xde, 0xad, 0xbe, 0xef}
//	fmt.Sprintf("%v %#X", fasthex.Display(b), fasthex.Display(b))
//	// "deadbeef 0xDEADBEEF"
type Formatter struct {
	b []byte
}

// Display returns a Formatter for b. b is read when the Formatter is printed,
// not when Display is called.
func Display(b []byte) Formatter {
	return Formatter{b: b}
}

// Format implements fmt.Formatter.
func (f Formatter) Format(s fmt.State, verb rune) {
	var upper bool
	switch verb {
	case 'x', 's', 'v':
	case 'X':
		upper = true
	default:
		fmt.Fprintf(s, "%%!%c(fasthex.Formatter=%d bytes)", verb, len(f.b))
		return
	}
	w := sink.NewText(s)
	if s.Flag('#') {
		w.PutString(Prefix)
	}
	simd.EncodeTo(simd.Active(), w, f.b, upper)
}

// String returns the lowercase encoding of the bytes.
func (f Formatter) String() string {
	return Encode(f.b)
}
