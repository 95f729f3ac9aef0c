package simd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by DefaultConfig.
const (
	// EnvBackend forces a kernel by name, e.g. FASTHEX_BACKEND=swar.
	EnvBackend = "FASTHEX_BACKEND"

	// EnvNoSIMD forces the scalar kernel when set to a true value.
	EnvNoSIMD = "FASTHEX_NOSIMD"
)

// ErrUnknownBackend is returned for a backend name no kernel answers to.
var ErrUnknownBackend = errors.New("unknown hex backend")

// Config controls kernel selection.
//
// Example:
//
//	cfg := simd.DefaultConfig()
//	cfg.Backend = "swar"
//	k, err := simd.Select(cfg)
type Config struct {
	// Backend forces a kernel by name. Empty selects by CPU features.
	// Default: value of FASTHEX_BACKEND
	Backend string

	// DisableSIMD forces the generic kernel and overrides Backend.
	// Default: value of FASTHEX_NOSIMD
	DisableSIMD bool
}

// DefaultConfig returns the configuration taken from the environment.
// Unset variables leave CPU detection in charge.
func DefaultConfig() Config {
	cfg := Config{Backend: os.Getenv(EnvBackend)}
	if v, err := strconv.ParseBool(os.Getenv(EnvNoSIMD)); err == nil {
		cfg.DisableSIMD = v
	}
	return cfg
}

// Validate checks that Backend names a compiled kernel.
func (c Config) Validate() error {
	if c.Backend != "" && Lookup(c.Backend) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	return nil
}
