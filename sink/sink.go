// Package sink provides the output targets hex encoders write through.
//
// A Sink abstracts "a place to put N more bytes". Three implementations are
// provided:
//   - Slice: a fixed-capacity region of a caller-owned slice
//   - Append: a growable byte buffer
//   - Text: a text-formatting target such as fmt.State or any io.Writer
//
// Encoders only ever emit ASCII hex digits, so every write to a Text sink is
// valid UTF-8 by construction.
package sink

import (
	"fmt"
	"io"
)

// Sink is the write capability shared by every encode target.
type Sink interface {
	// Put writes p in order.
	Put(p []byte)

	// PutByte writes a single byte.
	PutByte(c byte)

	// Remaining reports how many bytes can still be written.
	// bounded is false for targets without a capacity ceiling.
	Remaining() (n int, bounded bool)
}

// Slice writes into a fixed region. Writing past the end panics.
type Slice struct {
	buf []byte
	off int
}

// NewSlice returns a sink that fills buf from the start.
func NewSlice(buf []byte) *Slice {
	return &Slice{buf: buf}
}

// Put implements Sink.
func (s *Slice) Put(p []byte) {
	if len(p) > len(s.buf)-s.off {
		panic(fmt.Sprintf("sink: write of %d bytes overflows slice (%d remaining)", len(p), len(s.buf)-s.off))
	}
	s.off += copy(s.buf[s.off:], p)
}

// PutByte implements Sink.
func (s *Slice) PutByte(c byte) {
	if s.off >= len(s.buf) {
		panic("sink: write of 1 byte overflows slice (0 remaining)")
	}
	s.buf[s.off] = c
	s.off++
}

// Next reserves the next n bytes and returns them for the caller to fill.
func (s *Slice) Next(n int) []byte {
	if n > len(s.buf)-s.off {
		panic(fmt.Sprintf("sink: reserve of %d bytes overflows slice (%d remaining)", n, len(s.buf)-s.off))
	}
	p := s.buf[s.off : s.off+n : s.off+n]
	s.off += n
	return p
}

// Remaining implements Sink.
func (s *Slice) Remaining() (int, bool) {
	return len(s.buf) - s.off, true
}

// Len returns the number of bytes written so far.
func (s *Slice) Len() int {
	return s.off
}

// Append grows its buffer as needed.
type Append struct {
	buf []byte
}

// NewAppend returns a sink that appends to buf.
func NewAppend(buf []byte) *Append {
	return &Append{buf: buf}
}

// Put implements Sink.
func (a *Append) Put(p []byte) {
	a.buf = append(a.buf, p...)
}

// PutByte implements Sink.
func (a *Append) PutByte(c byte) {
	a.buf = append(a.buf, c)
}

// Remaining implements Sink. Append has no ceiling.
func (a *Append) Remaining() (int, bool) {
	return 0, false
}

// Grow ensures room for n more bytes without another allocation.
func (a *Append) Grow(n int) {
	if n <= cap(a.buf)-len(a.buf) {
		return
	}
	grown := make([]byte, len(a.buf), len(a.buf)+n)
	copy(grown, a.buf)
	a.buf = grown
}

// Bytes returns the accumulated buffer.
func (a *Append) Bytes() []byte {
	return a.buf
}

// Text forwards writes to an io.Writer such as fmt.State.
//
// After the first write error every later write is dropped.
type Text struct {
	w   io.Writer
	bw  io.ByteWriter
	err error
}

// NewText returns a sink writing to w.
func NewText(w io.Writer) *Text {
	t := &Text{w: w}
	if bw, ok := w.(io.ByteWriter); ok {
		t.bw = bw
	}
	return t
}

// Put implements Sink.
func (t *Text) Put(p []byte) {
	if t.err != nil || len(p) == 0 {
		return
	}
	_, t.err = t.w.Write(p)
}

// PutByte implements Sink. Targets implementing io.ByteWriter avoid the
// one-element temporary.
func (t *Text) PutByte(c byte) {
	if t.err != nil {
		return
	}
	if t.bw != nil {
		t.err = t.bw.WriteByte(c)
		return
	}
	b := [1]byte{c}
	_, t.err = t.w.Write(b[:])
}

// PutString writes s, using io.WriteString so string-aware targets skip a copy.
func (t *Text) PutString(s string) {
	if t.err != nil || s == "" {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}

// Remaining implements Sink. Text has no ceiling.
func (t *Text) Remaining() (int, bool) {
	return 0, false
}
