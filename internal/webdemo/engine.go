// Package webdemo adapts the transform engine to the plain values a
// JavaScript front end exchanges: strings, numbers, objects and arrays.
// Every method returns a value that js.ValueOf accepts.
package webdemo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/engine"
	"github.com/cwbudde/algo-dft/dsp/fft"
	"github.com/cwbudde/algo-dft/dsp/sequence"
)

// Call is one run request as the front end sends it. Sequences are text in
// the parser grammar.
type Call struct {
	Op      string `json:"op"`
	X       string `json:"x"`
	H       string `json:"h"`
	N       int    `json:"n"`
	K       int    `json:"k"`
	Sample  int    `json:"sample"`
	Inverse bool   `json:"inverse"`
}

// Engine holds the display settings shared by all calls.
type Engine struct {
	precision int
	runner    *engine.Runner
}

// NewEngine creates an engine rounding to precision decimals. It uses the
// planned FFT kernel.
func NewEngine(precision int) *Engine {
	e := &Engine{}
	e.SetPrecision(precision)
	return e
}

// SetPrecision changes the rounding precision (clamped to 0-12).
func (e *Engine) SetPrecision(precision int) {
	cfg := core.ApplyOptions(core.WithPrecision(precision))
	e.precision = cfg.Precision
	e.runner = engine.NewRunner(
		engine.WithWorkers(1),
		engine.WithDefaults(core.WithPrecision(cfg.Precision), core.WithKernel(fft.Planned())),
	)
}

// Precision returns the current rounding precision.
func (e *Engine) Precision() int {
	return e.precision
}

// Parse parses text and returns {samples: [{re, im}], text} or {error}.
func (e *Engine) Parse(text string) map[string]any {
	s, err := sequence.Parse(text)
	if err != nil {
		return errorValue(err)
	}
	samples := make([]any, len(s))
	for i, c := range s {
		samples[i] = map[string]any{"re": real(c), "im": imag(c)}
	}
	return map[string]any{
		"samples": samples,
		"text":    sequence.Format(s, e.precision),
	}
}

// Run executes c and returns the engine result as a plain object, or
// {error}.
func (e *Engine) Run(c Call) map[string]any {
	req, err := c.request()
	if err != nil {
		return errorValue(err)
	}
	res, err := e.runner.Run(context.Background(), req)
	if err != nil {
		return errorValue(err)
	}
	out, err := plain(res)
	if err != nil {
		return errorValue(err)
	}
	obj, ok := out.(map[string]any)
	if !ok {
		return errorValue(fmt.Errorf("unexpected result shape %T", out))
	}
	return obj
}

// Operations returns the registry as an array of plain objects.
func (e *Engine) Operations() []any {
	out, err := plain(engine.Operations())
	if err != nil {
		return nil
	}
	ops, _ := out.([]any)
	return ops
}

func (c Call) request() (engine.Request, error) {
	req := engine.Request{Op: c.Op, Size: c.N, K: c.K, Sample: c.Sample, Inverse: c.Inverse}
	var err error
	if req.X, err = sequence.Parse(c.X); err != nil {
		return engine.Request{}, err
	}
	if req.H, err = sequence.Parse(c.H); err != nil {
		return engine.Request{}, err
	}
	return req, nil
}

// plain converts v to nested map[string]any / []any / float64 / string /
// bool values through its JSON form.
func plain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func errorValue(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}
