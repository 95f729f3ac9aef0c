package simd

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/coregx/fasthex/internal/generic"
	"github.com/coregx/fasthex/sink"
)

// boundarySizes returns the lengths that exercise remainder handling around
// a window of width w.
func boundarySizes(w int) []int {
	sizes := []int{0, 1, w - 1, w, w + 1, 2*w - 1, 2 * w, 2*w + 1, 3*w + 5, 4*w + 3}
	out := sizes[:0]
	for _, n := range sizes {
		if n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*131 + 7)
	}
	return b
}

// TestKernels_Encode checks every kernel against encoding/hex for lengths
// around its vector width and the widest window in use.
func TestKernels_Encode(t *testing.T) {
	for _, k := range Kernels() {
		for _, w := range []int{k.Width(), 16, 32, 64} {
			for _, n := range boundarySizes(w) {
				t.Run(fmt.Sprintf("%s/w%d/n%d", k.Name(), w, n), func(t *testing.T) {
					src := pattern(n)
					want := hex.EncodeToString(src)

					dst := make([]byte, 2*n)
					k.Encode(dst, src, false)
					if string(dst) != want {
						t.Errorf("lower: got %s\nwant %s", dst, want)
					}

					k.Encode(dst, src, true)
					if string(dst) != strings.ToUpper(want) {
						t.Errorf("upper: got %s\nwant %s", dst, strings.ToUpper(want))
					}
				})
			}
		}
	}
}

// TestKernels_EncodeEveryByteEveryLane rotates all 256 byte values through
// every lane position of the widest window.
func TestKernels_EncodeEveryByteEveryLane(t *testing.T) {
	for _, k := range Kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for shift := 0; shift < 32; shift++ {
				src := make([]byte, 256+32)
				for i := range src {
					src[i] = byte(i - shift)
				}
				dst := make([]byte, 2*len(src))
				k.Encode(dst, src, false)
				if want := hex.EncodeToString(src); string(dst) != want {
					t.Fatalf("shift %d: mismatch", shift)
				}
			}
		})
	}
}

// TestKernels_CheckEveryByteEveryLane places every byte value at every lane
// of otherwise valid input and compares with the scalar table.
func TestKernels_CheckEveryByteEveryLane(t *testing.T) {
	const n = 64 + 16 + 3
	for _, k := range Kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			buf := bytes.Repeat([]byte{'a'}, n)
			for pos := 0; pos < n; pos++ {
				for c := 0; c < 256; c++ {
					buf[pos] = byte(c)
					want := generic.Check(buf)
					if got := k.Check(buf); got != want {
						t.Fatalf("Check with %#02x at %d = %v, want %v", c, pos, got, want)
					}
				}
				buf[pos] = 'a'
			}
		})
	}
}

func TestKernels_CheckBoundaries(t *testing.T) {
	valid := []byte("0123456789abcdefABCDEF")
	for _, k := range Kernels() {
		for _, w := range []int{k.Width(), 16, 32} {
			for _, n := range boundarySizes(w) {
				src := make([]byte, n)
				for i := range src {
					src[i] = valid[i%len(valid)]
				}
				if !k.Check(src) {
					t.Errorf("%s: rejected valid input of length %d", k.Name(), n)
				}
				if n == 0 {
					continue
				}
				src[n-1] = 'g'
				if k.Check(src) {
					t.Errorf("%s: accepted invalid last byte, length %d", k.Name(), n)
				}
				src[n-1] = valid[0]
				src[0] = 0xC0
				if k.Check(src) {
					t.Errorf("%s: accepted invalid first byte, length %d", k.Name(), n)
				}
			}
		}
	}
}

func TestKernels_Decode(t *testing.T) {
	for _, k := range Kernels() {
		for _, w := range []int{k.Width(), 16, 32, 64} {
			for _, n := range boundarySizes(w) {
				t.Run(fmt.Sprintf("%s/w%d/n%d", k.Name(), w, n), func(t *testing.T) {
					want := pattern(n)
					text := hex.EncodeToString(want)
					mixed := []byte(text)
					for i := range mixed {
						if i%3 == 0 {
							mixed[i] = bytes.ToUpper(mixed[i : i+1])[0]
						}
					}

					dst := make([]byte, n)
					if !k.DecodeChecked(dst, mixed) {
						t.Fatal("DecodeChecked rejected valid input")
					}
					if !bytes.Equal(dst, want) {
						t.Errorf("DecodeChecked = %x, want %x", dst, want)
					}

					clear(dst)
					k.DecodeUnchecked(dst, mixed)
					if !bytes.Equal(dst, want) {
						t.Errorf("DecodeUnchecked = %x, want %x", dst, want)
					}

					clear(dst)
					if !Decode(k, dst, mixed) || !bytes.Equal(dst, want) {
						t.Errorf("Decode = %x, want %x", dst, want)
					}
				})
			}
		}
	}
}

func TestKernels_DecodeRejectsInvalid(t *testing.T) {
	for _, k := range Kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, n := range []int{1, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100} {
				text := []byte(hex.EncodeToString(pattern(n)))
				for _, pos := range []int{0, len(text) / 2, len(text) - 1} {
					for _, bad := range []byte{'g', 'G', '/', ':', '@', '`', ' ', 0x00, 0x80, 0xB0, 0xE6} {
						saved := text[pos]
						text[pos] = bad
						dst := make([]byte, n)
						if k.DecodeChecked(dst, text) {
							t.Errorf("n=%d: DecodeChecked accepted %#02x at %d", n, bad, pos)
						}
						if Decode(k, dst, text) {
							t.Errorf("n=%d: Decode accepted %#02x at %d", n, bad, pos)
						}
						text[pos] = saved
					}
				}
			}
		})
	}
}

func TestKernels_Policy(t *testing.T) {
	tests := []struct {
		name          string
		validateFirst bool
	}{
		{"generic", false},
		{"swar", true},
		{"sse2", true},
		{"ssse3", true},
		{"avx2", true},
		{"neon", false},
		{"wasm", false},
	}

	for _, tc := range tests {
		k := Lookup(tc.name)
		if k == nil {
			t.Fatalf("Lookup(%q) = nil", tc.name)
		}
		if k.ValidateFirst() != tc.validateFirst {
			t.Errorf("%s: ValidateFirst() = %v, want %v", tc.name, k.ValidateFirst(), tc.validateFirst)
		}
	}
	if Lookup("avx512") != nil {
		t.Error("Lookup of unknown name should be nil")
	}
}

func TestEncodeTo(t *testing.T) {
	src := pattern(1000)
	want := hex.EncodeToString(src)

	for _, k := range Kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			a := sink.NewAppend([]byte("0x"))
			EncodeTo(k, a, src, false)
			if string(a.Bytes()) != "0x"+want {
				t.Error("append sink mismatch")
			}

			buf := make([]byte, 2*len(src))
			s := sink.NewSlice(buf)
			EncodeTo(k, s, src, true)
			if string(buf) != strings.ToUpper(want) || s.Len() != len(buf) {
				t.Error("slice sink mismatch")
			}

			var sb strings.Builder
			EncodeTo(k, sink.NewText(&sb), src, false)
			if sb.String() != want {
				t.Error("text sink mismatch")
			}
		})
	}
}

func TestEncodeTo_SmallSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	EncodeTo(genericKernel{}, sink.NewSlice(make([]byte, 5)), []byte{1, 2, 3}, false)
}

func TestKernels_LengthContracts(t *testing.T) {
	for _, k := range Kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			mustPanic(t, "encode", func() { k.Encode(make([]byte, 63), make([]byte, 32), false) })
			mustPanic(t, "decode", func() { k.DecodeChecked(make([]byte, 31), make([]byte, 64)) })
		})
	}
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	fn()
}
