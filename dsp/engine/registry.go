package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOperation is returned for an operation id not in the registry.
	ErrUnknownOperation = errors.New("engine: unknown operation")
	// ErrMissingInput is returned when a request lacks an input its
	// operation requires.
	ErrMissingInput = errors.New("engine: missing input")
)

// Operation IDs.
const (
	OpDFT         = "dft"
	OpIDFT        = "idft"
	OpFFT         = "fft"
	OpTwiddle     = "twiddle"
	OpCircular    = "circular"
	OpLinear      = "linear"
	OpOverlapSave = "overlap-save"
	OpOverlapAdd  = "overlap-add"
)

// Operation describes one registry entry.
type Operation struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	FullName    string `json:"fullName" yaml:"fullName"`
	Description string `json:"description" yaml:"description"`
	Formula     string `json:"formula" yaml:"formula"`

	// NeedsSecond reports that the operation reads Request.H.
	NeedsSecond bool `json:"needsSecond" yaml:"needsSecond"`
	// NeedsSize reports that Request.Size must be set; otherwise it is an
	// optional override.
	NeedsSize bool `json:"needsSize" yaml:"needsSize"`
	// NeedsK reports that the operation reads Request.K and Request.Sample
	// instead of a sequence.
	NeedsK bool `json:"needsK" yaml:"needsK"`

	run runFunc
}

var operations = []Operation{
	{
		ID:          OpDFT,
		Name:        "DFT",
		FullName:    "Discrete Fourier Transform",
		Description: "Transform time-domain signal to frequency domain",
		Formula:     "X[k] = Σ x[n]·e^(-j2πkn/N)",
		run:         runDFT,
	},
	{
		ID:          OpIDFT,
		Name:        "IDFT",
		FullName:    "Inverse Discrete Fourier Transform",
		Description: "Transform frequency spectrum back to time domain",
		Formula:     "x[n] = (1/N)·Σ X[k]·e^(+j2πkn/N)",
		run:         runIDFT,
	},
	{
		ID:          OpFFT,
		Name:        "FFT",
		FullName:    "Fast Fourier Transform",
		Description: "Fast O(N log N) frequency transform",
		Formula:     "X[k] = E[k] + W_N^k·O[k]",
		run:         runFFT,
	},
	{
		ID:          OpTwiddle,
		Name:        "Twiddle Factor",
		FullName:    "Twiddle Factor (W_N^kn)",
		Description: "Calculate the twiddle factor for specific k, n values",
		Formula:     "W_N^kn = e^(-j2πkn/N)",
		NeedsSize:   true,
		NeedsK:      true,
		run:         runTwiddle,
	},
	{
		ID:          OpCircular,
		Name:        "Circular Conv",
		FullName:    "Circular Convolution",
		Description: "Convolution of two periodic sequences",
		Formula:     "y[n] = Σ x[k]·h[(n-k) mod N]",
		NeedsSecond: true,
		run:         runCircular,
	},
	{
		ID:          OpLinear,
		Name:        "Linear Conv",
		FullName:    "Linear Convolution",
		Description: "Full convolution of two finite sequences",
		Formula:     "y[n] = Σ x[k]·h[n-k]",
		NeedsSecond: true,
		run:         runLinear,
	},
	{
		ID:          OpOverlapSave,
		Name:        "Overlap-Save",
		FullName:    "Overlap-Save Block Convolution",
		Description: "Block convolution discarding the wrapped samples of each window",
		Formula:     "y = concat(IDFT(DFT(x_b)·H)[M-1:N])",
		NeedsSecond: true,
		NeedsSize:   true,
		run:         runOverlapSave,
	},
	{
		ID:          OpOverlapAdd,
		Name:        "Overlap-Add",
		FullName:    "Overlap-Add Block Convolution",
		Description: "Block convolution summing the overlapping tails of each block",
		Formula:     "y = Σ_b shift(IDFT(DFT(x_b)·H), b·(N-M+1))",
		NeedsSecond: true,
		NeedsSize:   true,
		run:         runOverlapAdd,
	},
}

// aliases maps alternative spellings to registry ids.
var aliases = map[string]string{
	"circularconv":  OpCircular,
	"circular-conv": OpCircular,
	"linearconv":    OpLinear,
	"linear-conv":   OpLinear,
	"ols":           OpOverlapSave,
	"overlapsave":   OpOverlapSave,
	"ola":           OpOverlapAdd,
	"overlapadd":    OpOverlapAdd,
}

// Operations returns every registered operation in display order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// Lookup returns the operation for id. Matching ignores case and accepts
// a few common aliases ("ols", "ola", "circularConv").
func Lookup(id string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, op := range operations {
		if op.ID == key {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, id)
}

// IDs returns the registered operation ids in display order.
func IDs() []string {
	ids := make([]string, len(operations))
	for i, op := range operations {
		ids[i] = op.ID
	}
	return ids
}
