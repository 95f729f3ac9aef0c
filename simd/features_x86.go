//go:build amd64 || 386

package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
// They are reported by Features.
var (
	// hasSSE2 is part of the amd64 baseline but optional on 386.
	hasSSE2 = cpu.X86.HasSSE2

	// hasSSSE3 reports pshufb (Core 2, 2006+).
	hasSSSE3 = cpu.X86.HasSSSE3

	// hasAVX2 reports the 256-bit integer extensions (Haswell 2013+, Excavator 2015+).
	hasAVX2 = cpu.X86.HasAVX2
)

func detectedFeatures() []string {
	var f []string
	if hasSSE2 {
		f = append(f, "sse2")
	}
	if hasSSSE3 {
		f = append(f, "ssse3")
	}
	if hasAVX2 {
		f = append(f, "avx2")
	}
	return f
}
