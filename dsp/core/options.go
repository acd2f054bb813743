package core

import "fmt"

const (
	// DefaultPrecision is the number of decimal places result records are
	// rounded to.
	DefaultPrecision = 3

	// MaxPrecision bounds WithPrecision.
	MaxPrecision = 12
)

// Kernel computes an in-place forward DFT of a buffer whose length is a
// power of two. Implementations live in package fft.
type Kernel interface {
	Forward(data []complex128) error
}

// Config holds the settings shared by the transform and convolution engines.
type Config struct {
	// Size is the transform size N. Only meaningful when HasSize is true.
	Size    int
	HasSize bool

	// Precision is the number of decimals result fields are rounded to.
	Precision int

	// Kernel overrides the power-of-two FFT kernel. Nil selects the default.
	Kernel Kernel

	// PaddedBins makes fft return the first N bins of the next power-of-two
	// transform instead of an exact N-point transform.
	PaddedBins bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the engine defaults: no explicit size, 3 decimals.
func DefaultConfig() Config {
	return Config{
		Precision: DefaultPrecision,
	}
}

// WithSize sets the transform size N explicitly. Zero and negative values are
// kept so that the engine can reject them.
func WithSize(n int) Option {
	return func(cfg *Config) {
		cfg.Size = n
		cfg.HasSize = true
	}
}

// WithPrecision sets the number of decimals, clamped to [0, MaxPrecision].
func WithPrecision(decimals int) Option {
	return func(cfg *Config) {
		cfg.Precision = int(Clamp(float64(decimals), 0, MaxPrecision))
	}
}

// WithKernel selects the power-of-two FFT kernel.
func WithKernel(k Kernel) Option {
	return func(cfg *Config) {
		if k != nil {
			cfg.Kernel = k
		}
	}
}

// WithPaddedBins enables zero-pad-and-truncate FFT sizing for N that are
// not powers of two.
func WithPaddedBins() Option {
	return func(cfg *Config) {
		cfg.PaddedBins = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ResolveSize returns the explicit size if one was set, otherwise def.
// An explicit size must be a positive integer.
func (c Config) ResolveSize(def int) (int, error) {
	if !c.HasSize {
		return def, nil
	}
	if c.Size <= 0 {
		return 0, fmt.Errorf("%w: N must be a positive integer, got %d", ErrInvalidSize, c.Size)
	}
	return c.Size, nil
}

// Round rounds value with the configured precision.
func (c Config) Round(value float64) float64 {
	return Round(value, c.Precision)
}
