package simd

import (
	"slices"
	"sync"
)

var kernels = []Kernel{
	genericKernel{},
	swarKernel{},
	sse2Kernel,
	ssse3Kernel,
	avx2Kernel,
	neonKernel{},
	wasmKernel{},
}

var (
	activeOnce sync.Once
	active     Kernel
)

// Active returns the kernel used by the package-level codec functions.
//
// The choice is made on first use from DefaultConfig, falling back to the
// swar kernel, then kept for the lifetime of the process. Concurrent first calls
// are safe.
func Active() Kernel {
	activeOnce.Do(func() {
		k, err := Select(DefaultConfig())
		if err != nil {
			k = defaultKernel()
		}
		active = k
	})
	return active
}

// Select returns the kernel described by cfg.
func Select(cfg Config) (Kernel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case cfg.DisableSIMD:
		return genericKernel{}, nil
	case cfg.Backend != "":
		return Lookup(cfg.Backend), nil
	}
	return defaultKernel(), nil
}

// defaultKernel is the kernel used when no backend is configured.
//
// The sse2, ssse3, avx2, neon and wasm kernels execute their instruction
// models as Go loops and are slower than word-at-a-time code, so they are
// selectable by name only. swar is the default on every architecture.
// TODO: back avx2 and neon with assembly and make them the default when the
// matching Features are present.
func defaultKernel() Kernel {
	return swarKernel{}
}

// Kernels returns every compiled kernel, generic first.
func Kernels() []Kernel {
	return slices.Clone(kernels)
}

// Lookup returns the kernel with the given name, or nil.
func Lookup(name string) Kernel {
	for _, k := range kernels {
		if k.Name() == name {
			return k
		}
	}
	return nil
}

// Features returns the vector extensions detected on this CPU.
func Features() []string {
	return detectedFeatures()
}
