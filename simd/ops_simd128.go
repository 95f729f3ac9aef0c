package simd

// Lane-accurate models of the WebAssembly simd128 operations used by the wasm
// kernel.

func u8x16Splat(c byte) Vec128 { return splat128(c) }

func v128And(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

func v128Or(a, b Vec128) (r Vec128) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

func u8x16Shr(v Vec128, n uint) (r Vec128) {
	for i := range r {
		r[i] = v[i] >> (n & 7)
	}
	return r
}

func u8x16Ge(a, b Vec128) (r Vec128) {
	for i := range r {
		if a[i] >= b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

func u8x16Le(a, b Vec128) (r Vec128) {
	for i := range r {
		if a[i] <= b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// i8x16Swizzle: select lanes of a by s; indices >= 16 yield zero.
func i8x16Swizzle(a, s Vec128) (r Vec128) {
	for i := range r {
		if s[i] < 16 {
			r[i] = a[s[i]]
		}
	}
	return r
}

// i8x16Shuffle: select lanes from the concatenation a:b by constant indices.
func i8x16Shuffle(a, b Vec128, lanes *[16]byte) (r Vec128) {
	for i, l := range lanes {
		if l < 16 {
			r[i] = a[l]
		} else {
			r[i] = b[l-16]
		}
	}
	return r
}

// u8x16AllTrue: every lane is non-zero.
func u8x16AllTrue(v Vec128) bool {
	for _, c := range v {
		if c == 0 {
			return false
		}
	}
	return true
}
