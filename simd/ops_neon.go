package simd

// Lane-accurate models of the AArch64 Advanced SIMD (NEON) instructions used
// by the neon kernel. Comparisons are unsigned and produce all-ones masks.

func vdupq(c byte) Vec128 { return splat128(c) }

func vandq(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

func vorrq(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

func vaddq(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func vsubq(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// vshrqN: logical right shift of each byte.
func vshrqN(v Vec128, n uint) (r Vec128) {
	for i := range r {
		r[i] = v[i] >> n
	}
	return r
}

// vshlqN: left shift of each byte, bits shifted out are lost.
func vshlqN(v Vec128, n uint) (r Vec128) {
	for i := range r {
		r[i] = v[i] << n
	}
	return r
}

func vcgeq(a, b Vec128) (r Vec128) {
	for i := range r {
		if a[i] >= b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

func vcleq(a, b Vec128) (r Vec128) {
	for i := range r {
		if a[i] <= b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// vbslq: bitwise select, bits from a where mask is set, else from b.
func vbslq(mask, a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = mask[i]&a[i] | ^mask[i]&b[i]
	}
	return r
}

// vminvq: minimum across all lanes.
func vminvq(v Vec128) byte {
	m := v[0]
	for _, c := range v[1:] {
		m = min(m, c)
	}
	return m
}

// vqtbl1q: table lookup; out-of-range indices (>= 16) yield zero.
func vqtbl1q(table, idx Vec128) (r Vec128) {
	for i := range r {
		if idx[i] < 16 {
			r[i] = table[idx[i]]
		}
	}
	return r
}

// vzip1q: interleave the low halves of a and b.
func vzip1q(a, b Vec128) (r Vec128) {
	for i := 0; i < 8; i++ {
		r[2*i] = a[i]
		r[2*i+1] = b[i]
	}
	return r
}

// vzip2q: interleave the high halves of a and b.
func vzip2q(a, b Vec128) (r Vec128) {
	for i := 0; i < 8; i++ {
		r[2*i] = a[8+i]
		r[2*i+1] = b[8+i]
	}
	return r
}

// vuzp1q: even-indexed lanes of the concatenation a:b.
func vuzp1q(a, b Vec128) (r Vec128) {
	for i := 0; i < 8; i++ {
		r[i] = a[2*i]
		r[8+i] = b[2*i]
	}
	return r
}

// vuzp2q: odd-indexed lanes of the concatenation a:b.
func vuzp2q(a, b Vec128) (r Vec128) {
	for i := 0; i < 8; i++ {
		r[i] = a[2*i+1]
		r[8+i] = b[2*i+1]
	}
	return r
}
