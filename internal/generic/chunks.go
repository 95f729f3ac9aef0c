package generic

// Split divides src into a prefix made of whole windows of width bytes and the
// trailing partial window. Every vector kernel uses this decomposition so tail
// handling is identical across backends.
func Split(src []byte, width int) (body, tail []byte) {
	n := len(src) - len(src)%width
	return src[:n], src[n:]
}

// EncodeChunks calls fn for each whole window of src with the matching
// 2*width bytes of dst, then encodes the remainder with Encode.
func EncodeChunks(dst, src []byte, width int, table *[16]byte, fn func(dst, chunk []byte)) {
	body, tail := Split(src, width)
	o := 0
	for i := 0; i < len(body); i += width {
		fn(dst[o:o+2*width], body[i:i+width])
		o += 2 * width
	}
	if len(tail) > 0 {
		Encode(dst[o:], tail, table)
	}
}

// CheckChunks reports whether fn accepts every whole window of src and the
// remainder passes Check.
func CheckChunks(src []byte, width int, fn func(chunk []byte) bool) bool {
	body, tail := Split(src, width)
	for i := 0; i < len(body); i += width {
		if !fn(body[i : i+width]) {
			return false
		}
	}
	return Check(tail)
}

// DecodeChunks calls fn for each whole window of width input bytes, writing
// width/2 bytes of dst, then decodes the remainder with DecodeChecked.
// width must be even. It stops and returns false as soon as fn or the
// remainder reports invalid input.
func DecodeChunks(dst, src []byte, width int, fn func(dst, chunk []byte) bool) bool {
	checkDecodeLen(dst, src)
	body, tail := Split(src, width)
	o := 0
	for i := 0; i < len(body); i += width {
		if !fn(dst[o:o+width/2], body[i:i+width]) {
			return false
		}
		o += width / 2
	}
	return DecodeChecked(dst[o:], tail)
}

// DecodeUncheckedChunks is the unchecked counterpart of DecodeChunks for
// kernels that validate the whole input before decoding.
func DecodeUncheckedChunks(dst, src []byte, width int, fn func(dst, chunk []byte)) {
	checkDecodeLen(dst, src)
	body, tail := Split(src, width)
	o := 0
	for i := 0; i < len(body); i += width {
		fn(dst[o:o+width/2], body[i:i+width])
		o += width / 2
	}
	DecodeUnchecked(dst[o:], tail)
}
