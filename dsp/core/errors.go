package core

import "errors"

// Error taxonomy shared by every engine package. Callers match with errors.Is;
// the wrapped message carries the detail.
var (
	// ErrValidation is returned for empty or non-finite input sequences.
	ErrValidation = errors.New("dsp: invalid input")

	// ErrInvalidSize is returned when a transform size is not a positive
	// integer, or a block size is smaller than the impulse response.
	ErrInvalidSize = errors.New("dsp: invalid size")

	// ErrParse is returned (wrapped in a token-carrying error) when sequence
	// text cannot be parsed.
	ErrParse = errors.New("dsp: parse error")
)
