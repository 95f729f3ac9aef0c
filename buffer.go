package fasthex

import (
	"fmt"

	"github.com/coregx/fasthex/internal/conv"
	"github.com/coregx/fasthex/simd"
	"github.com/coregx/fasthex/sink"
)

// Buffer is a reusable, fixed-size encoding buffer for inputs of one length,
// such as hashes or keys.
//
// Its storage is allocated once by NewBuffer; each Format overwrites it.
// Passing an input of any other length is a programming error and panics.
// A Buffer is not safe for concurrent use.
//
// Example:
//
//	buf := fasthex.NewBuffer(32, true)
//	for _, h := range hashes {
//	    fmt.Println(buf.Format(h[:]))
//	}
type Buffer struct {
	buf    []byte
	n      int
	prefix bool
}

// NewBuffer returns a Buffer that encodes n-byte inputs, optionally behind a
// "0x" prefix. The buffer starts out holding the encoding of n zero bytes.
func NewBuffer(n int, prefix bool) *Buffer {
	size := conv.EncodedLen(n)
	if prefix {
		size = conv.PrefixedLen(n)
	}
	b := &Buffer{buf: make([]byte, size), n: n, prefix: prefix}
	body := b.body()
	for i := range body {
		body[i] = '0'
	}
	if prefix {
		copy(b.buf, Prefix)
	}
	return b
}

// Len returns the input length the buffer encodes.
func (b *Buffer) Len() int {
	return b.n
}

// Format encodes src in lowercase and returns the full text, prefix
// included. The result is a copy; the buffer can be reused immediately.
func (b *Buffer) Format(src []byte) string {
	b.format(src, false)
	return string(b.buf)
}

// FormatUpper is Format with uppercase digits. The prefix stays lowercase.
func (b *Buffer) FormatUpper(src []byte) string {
	b.format(src, true)
	return string(b.buf)
}

func (b *Buffer) format(src []byte, upper bool) {
	if len(src) != b.n {
		panic(fmt.Sprintf("fasthex: Buffer formats %d-byte inputs, got %d", b.n, len(src)))
	}
	simd.EncodeTo(simd.Active(), sink.NewSlice(b.body()), src, upper)
}

func (b *Buffer) body() []byte {
	if b.prefix {
		return b.buf[len(Prefix):]
	}
	return b.buf
}

// Bytes returns the buffer contents. The slice aliases the buffer and is
// overwritten by the next Format.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns the buffer contents as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// MustEncodeFixed encodes src in lowercase into dst and panics unless dst is
// exactly EncodedLen(len(src)) bytes. Use it where the sizes are fixed by
// construction, for example encoding a [32]byte into a [64]byte.
func MustEncodeFixed(dst, src []byte) {
	if err := EncodeToSlice(dst, src); err != nil {
		panic(err)
	}
}
