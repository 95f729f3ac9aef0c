//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// hasASIMD reports Advanced SIMD (NEON). It is mandatory on ARMv8-A but still
// queried so Features reflects the actual core.
var hasASIMD = cpu.ARM64.HasASIMD

func detectedFeatures() []string {
	if hasASIMD {
		return []string{"asimd"}
	}
	return nil
}
