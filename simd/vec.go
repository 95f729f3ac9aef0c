package simd

// Vec128 models a 128-bit vector register (XMM, NEON Q, wasm v128) as 16 byte
// lanes. Lane 0 is the lowest-addressed byte, matching little-endian loads.
type Vec128 [16]byte

// Vec256 models a 256-bit AVX2 register (YMM) as 32 byte lanes.
type Vec256 [32]byte

func load128(b []byte) (v Vec128) {
	copy(v[:], b[:16])
	return v
}

func (v *Vec128) store(dst []byte) {
	copy(dst[:16], v[:])
}

func splat128(c byte) (v Vec128) {
	for i := range v {
		v[i] = c
	}
	return v
}

func load256(b []byte) (v Vec256) {
	copy(v[:], b[:32])
	return v
}

func (v *Vec256) store(dst []byte) {
	copy(dst[:32], v[:])
}

func splat256(c byte) (v Vec256) {
	for i := range v {
		v[i] = c
	}
	return v
}

// word returns 16-bit lane i (little-endian).
func (v Vec256) word(i int) uint16 {
	return uint16(v[2*i]) | uint16(v[2*i+1])<<8
}

func (v *Vec256) setWord(i int, w uint16) {
	v[2*i] = byte(w)
	v[2*i+1] = byte(w >> 8)
}

func splatWord256(w uint16) (v Vec256) {
	for i := 0; i < 16; i++ {
		v.setWord(i, w)
	}
	return v
}
