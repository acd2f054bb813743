package engine

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/conv"
	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/dsp/fft"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// Request names an operation and carries its inputs.
type Request struct {
	Op string
	// X is the primary sequence (spectrum for idft).
	X sequence.Sequence
	// H is the second sequence for convolutions.
	H sequence.Sequence
	// Size is N: the transform size, circular period or block size.
	// Zero means unset.
	Size int
	// K and Sample are the frequency and time indices for twiddle.
	K      int
	Sample int
	// Inverse selects the inverse twiddle e^(+j2πkn/N).
	Inverse bool
	// Options are applied after any runner defaults.
	Options []core.Option
}

// Result is the output of one request. Exactly one of Records and Twiddle
// is set. Size is the N the operation used and stays zero for linear
// convolution.
type Result struct {
	Operation string            `json:"operation" yaml:"operation"`
	Size      int               `json:"size,omitempty" yaml:"size,omitempty"`
	Records   []spectrum.Record `json:"records,omitempty" yaml:"records,omitempty"`
	Twiddle   *dft.Twiddle      `json:"twiddle,omitempty" yaml:"twiddle,omitempty"`
}

type runFunc func(req Request, opts []core.Option) (Result, error)

// Run executes req synchronously.
func Run(req Request) (Result, error) {
	op, err := Lookup(req.Op)
	if err != nil {
		return Result{}, err
	}
	if err := op.check(req); err != nil {
		return Result{}, err
	}

	opts := req.Options
	if req.Size != 0 && !op.NeedsSize {
		opts = append(append([]core.Option(nil), opts...), core.WithSize(req.Size))
	}

	res, err := op.run(req, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.ID, err)
	}
	res.Operation = op.ID
	return res, nil
}

func (op Operation) check(req Request) error {
	if !op.NeedsK && len(req.X) == 0 {
		return fmt.Errorf("%w: %w: %s needs an input sequence", ErrMissingInput, core.ErrValidation, op.ID)
	}
	if op.NeedsSecond && len(req.H) == 0 {
		return fmt.Errorf("%w: %w: %s needs a second sequence", ErrMissingInput, core.ErrValidation, op.ID)
	}
	if req.Size < 0 {
		return fmt.Errorf("%w: %s: N must be positive, got %d", core.ErrInvalidSize, op.ID, req.Size)
	}
	if op.NeedsSize && req.Size == 0 {
		return fmt.Errorf("%w: %w: %s needs N", ErrMissingInput, core.ErrInvalidSize, op.ID)
	}
	return nil
}

// records wraps an engine result; n is the N reported with it.
func records(recs []spectrum.Record, n int, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Size: n, Records: recs}, nil
}

func runDFT(req Request, opts []core.Option) (Result, error) {
	recs, err := dft.DFT(req.X, opts...)
	return records(recs, len(recs), err)
}

func runIDFT(req Request, opts []core.Option) (Result, error) {
	recs, err := dft.IDFT(req.X, opts...)
	return records(recs, len(recs), err)
}

func runFFT(req Request, opts []core.Option) (Result, error) {
	recs, err := fft.FFT(req.X, opts...)
	return records(recs, len(recs), err)
}

func runCircular(req Request, opts []core.Option) (Result, error) {
	recs, err := conv.Circular(req.X, req.H, opts...)
	return records(recs, len(recs), err)
}

func runLinear(req Request, opts []core.Option) (Result, error) {
	recs, err := conv.Linear(req.X, req.H, opts...)
	return records(recs, 0, err)
}

func runOverlapSave(req Request, opts []core.Option) (Result, error) {
	recs, err := conv.OverlapSaveConvolve(req.X, req.H, req.Size, opts...)
	return records(recs, req.Size, err)
}

func runOverlapAdd(req Request, opts []core.Option) (Result, error) {
	recs, err := conv.OverlapAddConvolve(req.X, req.H, req.Size, opts...)
	return records(recs, req.Size, err)
}

func runTwiddle(req Request, opts []core.Option) (Result, error) {
	w, err := dft.TwiddleFactor(req.K, req.Sample, req.Size, req.Inverse, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Size: req.Size, Twiddle: &w}, nil
}
