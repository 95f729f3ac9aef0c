package simd

// Lane-accurate models of the SSE2, SSSE3 and AVX2 instructions used by the
// x86 kernels. Each function is named after the instruction it models and
// reproduces its per-lane semantics, including zeroing and saturation rules.

// pand: bitwise AND.
func pand(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

// por: bitwise OR.
func por(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

// pcmpgtb: signed byte compare, 0xFF where a > b.
func pcmpgtb(a, b Vec128) (r Vec128) {
	for i := range r {
		if int8(a[i]) > int8(b[i]) {
			r[i] = 0xFF
		}
	}
	return r
}

// pmovmskb: gathers the sign bit of every byte into a 16-bit mask.
func pmovmskb(v Vec128) uint32 {
	var m uint32
	for i := range v {
		m |= uint32(v[i]>>7) << i
	}
	return m
}

// psrld: logical right shift of each 32-bit lane.
func psrld(v Vec128, n uint) (r Vec128) {
	for i := 0; i < 16; i += 4 {
		d := uint32(v[i]) | uint32(v[i+1])<<8 | uint32(v[i+2])<<16 | uint32(v[i+3])<<24
		d >>= n
		r[i], r[i+1], r[i+2], r[i+3] = byte(d), byte(d>>8), byte(d>>16), byte(d>>24)
	}
	return r
}

// pshufb: byte shuffle of table by idx. An index with bit 7 set yields zero;
// otherwise only its low four bits are used.
func pshufb(table, idx Vec128) (r Vec128) {
	for i := range r {
		if idx[i]&0x80 == 0 {
			r[i] = table[idx[i]&0x0F]
		}
	}
	return r
}

// punpcklbw: interleave the low eight bytes of a and b.
func punpcklbw(a, b Vec128) (r Vec128) {
	for i := 0; i < 8; i++ {
		r[2*i] = a[i]
		r[2*i+1] = b[i]
	}
	return r
}

// punpckhbw: interleave the high eight bytes of a and b.
func punpckhbw(a, b Vec128) (r Vec128) {
	for i := 0; i < 8; i++ {
		r[2*i] = a[8+i]
		r[2*i+1] = b[8+i]
	}
	return r
}

// vpor: 256-bit bitwise OR.
func vpor(a, b Vec256) (r Vec256) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

// vpand: 256-bit bitwise AND.
func vpand(a, b Vec256) (r Vec256) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

// vpaddb: wrapping byte add.
func vpaddb(a, b Vec256) (r Vec256) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// vpcmpgtb: signed byte compare, 0xFF where a > b.
func vpcmpgtb(a, b Vec256) (r Vec256) {
	for i := range r {
		if int8(a[i]) > int8(b[i]) {
			r[i] = 0xFF
		}
	}
	return r
}

// vpmovmskb: sign bit of every byte into a 32-bit mask.
func vpmovmskb(v Vec256) uint32 {
	var m uint32
	for i := range v {
		m |= uint32(v[i]>>7) << i
	}
	return m
}

// vbroadcasti128: copy a 128-bit value into both halves.
func vbroadcasti128(v Vec128) (r Vec256) {
	copy(r[:16], v[:])
	copy(r[16:], v[:])
	return r
}

// vpmovzxbw: zero-extend 16 bytes into 16 words.
func vpmovzxbw(v Vec128) (r Vec256) {
	for i := range v {
		r[2*i] = v[i]
	}
	return r
}

// vpsrlw: logical right shift of each word.
func vpsrlw(v Vec256, n uint) (r Vec256) {
	for i := 0; i < 16; i++ {
		r.setWord(i, v.word(i)>>n)
	}
	return r
}

// vpsllw: left shift of each word.
func vpsllw(v Vec256, n uint) (r Vec256) {
	for i := 0; i < 16; i++ {
		r.setWord(i, v.word(i)<<n)
	}
	return r
}

// vpsraw: arithmetic right shift of each word.
func vpsraw(v Vec256, n uint) (r Vec256) {
	for i := 0; i < 16; i++ {
		r.setWord(i, uint16(int16(v.word(i))>>n))
	}
	return r
}

// vpaddw: wrapping word add.
func vpaddw(a, b Vec256) (r Vec256) {
	for i := 0; i < 16; i++ {
		r.setWord(i, a.word(i)+b.word(i))
	}
	return r
}

// vpshufb: pshufb applied independently to each 128-bit half. Indices never
// cross into the other half.
func vpshufb(table, idx Vec256) (r Vec256) {
	for i := range r {
		if idx[i]&0x80 == 0 {
			base := i &^ 15
			r[i] = table[base+int(idx[i]&0x0F)]
		}
	}
	return r
}

// vpmaddubsw: multiply unsigned bytes of a by signed bytes of b and add
// adjacent products into saturated signed words.
func vpmaddubsw(a, b Vec256) (r Vec256) {
	for i := 0; i < 16; i++ {
		sum := int32(a[2*i])*int32(int8(b[2*i])) + int32(a[2*i+1])*int32(int8(b[2*i+1]))
		r.setWord(i, uint16(saturateInt16(sum)))
	}
	return r
}

// vpackuswb: pack signed words of a and b into unsigned saturated bytes, per
// 128-bit half: [a.lo, b.lo | a.hi, b.hi].
func vpackuswb(a, b Vec256) (r Vec256) {
	for half := 0; half < 2; half++ {
		for i := 0; i < 8; i++ {
			r[16*half+i] = saturateUint8(int16(a.word(8*half + i)))
			r[16*half+8+i] = saturateUint8(int16(b.word(8*half + i)))
		}
	}
	return r
}

// vpermq: select 64-bit lanes of v by the 2-bit fields of imm.
func vpermq(v Vec256, imm uint8) (r Vec256) {
	for i := 0; i < 4; i++ {
		src := int(imm>>(2*i)) & 3
		copy(r[8*i:8*i+8], v[8*src:8*src+8])
	}
	return r
}

func saturateInt16(v int32) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	}
	return int16(v)
}

func saturateUint8(v int16) byte {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return byte(v)
}
