//go:build wasm

package simd

// hasSIMD128 is known at build time on wasm: there is no runtime feature
// query, and every host the Go wasm port targets implements simd128.
const hasSIMD128 = true

func detectedFeatures() []string {
	if hasSIMD128 {
		return []string{"simd128"}
	}
	return nil
}
