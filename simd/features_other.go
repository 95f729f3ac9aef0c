//go:build !amd64 && !386 && !arm64 && !wasm

package simd

// No vector extensions are probed on other architectures.
func detectedFeatures() []string {
	return nil
}
