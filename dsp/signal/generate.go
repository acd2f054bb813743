package signal

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
)

// Generator creates deterministic noise sequences from a seed.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. The default seed is 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Noise generates n samples whose real and imaginary parts are uniform in
// [-amplitude, amplitude]. The same seed always yields the same sequence.
func (g *Generator) Noise(amplitude float64, n int) (sequence.Sequence, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", core.ErrValidation, amplitude)
	}
	out := make(sequence.Sequence, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out, nil
}

// Impulse returns a length-n sequence that is 1 at pos and 0 elsewhere.
// Its DFT is flat in magnitude.
func Impulse(n, pos int) (sequence.Sequence, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("%w: impulse position %d outside [0, %d)", core.ErrValidation, pos, n)
	}
	out := make(sequence.Sequence, n)
	out[pos] = 1
	return out, nil
}

// Step returns n ones. Its DFT is a single spike of height n at bin 0.
func Step(n int) (sequence.Sequence, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	out := make(sequence.Sequence, n)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// Exponential returns x[m] = e^(+j2πkm/n), a complex tone whose n-point DFT
// is n at bin k mod n and 0 elsewhere.
func Exponential(k, n int) (sequence.Sequence, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	out := make(sequence.Sequence, n)
	for m := range out {
		idx := (k * m) % n
		out[m] = cmplx.Rect(1, 2*math.Pi*float64(idx)/float64(n))
	}
	return out, nil
}

// Normalize scales data to the target peak magnitude and returns a new
// sequence.
func Normalize(data sequence.Sequence, targetPeak float64) (sequence.Sequence, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", core.ErrValidation, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", core.ErrValidation)
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = max(maxAbs, cmplx.Abs(v))
	}

	out := make(sequence.Sequence, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := complex(targetPeak/maxAbs, 0)
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

func checkLen(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: length must be > 0: %d", core.ErrInvalidSize, n)
	}
	return nil
}
