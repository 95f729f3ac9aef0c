package generic

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/coregx/fasthex/internal/lut"
)

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		upper bool
		want  string
	}{
		{"empty", nil, false, ""},
		{"kiwi", []byte("kiwi"), false, "6b697769"},
		{"kiwi_upper", []byte("kiwi"), true, "6B697769"},
		{"deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false, "deadbeef"},
		{"deadbeef_upper", []byte{0xde, 0xad, 0xbe, 0xef}, true, "DEADBEEF"},
		{"extremes", []byte{0x00, 0xff}, false, "00ff"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, 2*len(tc.input))
			Encode(dst, tc.input, lut.Chars(tc.upper))
			if string(dst) != tc.want {
				t.Errorf("Encode(%x) = %q, want %q", tc.input, dst, tc.want)
			}
		})
	}
}

func TestEncodeAllBytes(t *testing.T) {
	src := allBytes()
	dst := make([]byte, 512)
	Encode(dst, src, &lut.Lower)
	if want := hex.EncodeToString(src); string(dst) != want {
		t.Errorf("lowercase mismatch:\n got %s\nwant %s", dst, want)
	}
	Encode(dst, src, &lut.Upper)
	if want := strings.ToUpper(hex.EncodeToString(src)); string(dst) != want {
		t.Errorf("uppercase mismatch:\n got %s\nwant %s", dst, want)
	}
}

func TestEncodeShortOutputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Encode(make([]byte, 3), []byte{1, 2}, &lut.Lower)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		first int
	}{
		{"", true, -1},
		{"0123456789abcdefABCDEF", true, -1},
		{"g", false, 0},
		{"0g", false, 1},
		{"abcdefG", false, 6},
		{"/", false, 0},
		{":", false, 0},
		{"@", false, 0},
		{"`", false, 0},
		{"\xff", false, 0},
		{"aa aa", false, 2},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := Check([]byte(tc.input)); got != tc.want {
				t.Errorf("Check(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if got := FirstInvalid([]byte(tc.input)); got != tc.first {
				t.Errorf("FirstInvalid(%q) = %d, want %d", tc.input, got, tc.first)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
		ok    bool
	}{
		{"", []byte{}, true},
		{"6b697769", []byte("kiwi"), true},
		{"DeAdBeEf", []byte{0xde, 0xad, 0xbe, 0xef}, true},
		{"zz", nil, false},
		{"00zz", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			dst := make([]byte, len(tc.input)/2)
			ok := DecodeChecked(dst, []byte(tc.input))
			if ok != tc.ok {
				t.Fatalf("DecodeChecked(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if !ok {
				return
			}
			if !bytes.Equal(dst, tc.want) {
				t.Errorf("DecodeChecked(%q) = %x, want %x", tc.input, dst, tc.want)
			}

			clear(dst)
			DecodeUnchecked(dst, []byte(tc.input))
			if !bytes.Equal(dst, tc.want) {
				t.Errorf("DecodeUnchecked(%q) = %x, want %x", tc.input, dst, tc.want)
			}
		})
	}
}

func TestDecodeLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	DecodeChecked(make([]byte, 1), []byte("abcd"))
}

func TestSplit(t *testing.T) {
	src := make([]byte, 37)
	for _, width := range []int{1, 8, 16, 32, 64} {
		body, tail := Split(src, width)
		if len(body)%width != 0 || len(tail) >= width || len(body)+len(tail) != len(src) {
			t.Errorf("width %d: body %d tail %d", width, len(body), len(tail))
		}
	}
}

func TestChunkHelpersMatchScalar(t *testing.T) {
	const width = 8
	for n := 0; n <= 3*width+1; n++ {
		src := allBytes()[100 : 100+n]

		// A chunk function that defers to the scalar kernel must agree with
		// the plain scalar kernel for every tail size.
		dst := make([]byte, 2*n)
		calls := 0
		EncodeChunks(dst, src, width, &lut.Lower, func(d, chunk []byte) {
			calls++
			Encode(d, chunk, &lut.Lower)
		})
		if string(dst) != hex.EncodeToString(src) {
			t.Fatalf("n=%d: EncodeChunks mismatch", n)
		}
		if calls != n/width {
			t.Errorf("n=%d: %d chunk calls, want %d", n, calls, n/width)
		}

		text := []byte(hex.EncodeToString(src))
		if !CheckChunks(text, width, Check) {
			t.Errorf("n=%d: CheckChunks rejected valid text", n)
		}
		if len(text) > 0 {
			text[len(text)-1] = 'x'
			if CheckChunks(text, width, Check) {
				t.Errorf("n=%d: CheckChunks accepted invalid tail", n)
			}
			text[len(text)-1] = '0'
		}

		out := make([]byte, n)
		if !DecodeChunks(out, text, 2*width, DecodeChecked) {
			t.Fatalf("n=%d: DecodeChunks failed", n)
		}
	}
}
