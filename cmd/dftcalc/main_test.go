package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/engine"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeResult(t *testing.T, out string) engine.Result {
	t.Helper()
	var res engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	return res
}

func reals(recs []spectrum.Record) []float64 {
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = r.Re
	}
	return out
}

func TestDFTTableDefaultSequence(t *testing.T) {
	out, err := execute(t, "", "dft")
	require.NoError(t, err)
	assert.Contains(t, out, "3.000 + j2.000")
	assert.Contains(t, out, "33.69")
	assert.Contains(t, out, "0.000 - j3.000")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestDFTJSON(t *testing.T) {
	out, err := execute(t, "", "dft", "(1,0), (0,-1), (2,3), (0,0)", "-o", "json")
	require.NoError(t, err)

	res := decodeResult(t, out)
	assert.Equal(t, "dft", res.Operation)
	require.Len(t, res.Records, 4)
	assert.Equal(t, spectrum.Record{Index: 1, Re: -2, Im: -3, Magnitude: 3.606, Phase: -123.69}, res.Records[1])
}

func TestFFTYAMLWithSize(t *testing.T) {
	out, err := execute(t, "", "fft", "1,2,3", "-n", "5", "-o", "yaml", "--kernel", "planned")
	require.NoError(t, err)

	var res engine.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.Size)
	require.Len(t, res.Records, 5)
	assert.Equal(t, 6.0, res.Records[0].Re)
}

func TestFFTPaddedFlag(t *testing.T) {
	out, err := execute(t, "", "fft", "1,1,1", "--padded", "-o", "json")
	require.NoError(t, err)
	res := decodeResult(t, out)
	assert.Equal(t, []float64{3, 0, 1}, reals(res.Records))
	assert.Equal(t, -1.0, res.Records[1].Im)
}

func TestTwiddleTable(t *testing.T) {
	out, err := execute(t, "", "twiddle", "-k", "1", "--sample", "2", "-n", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "0.000 - j1.000")
	assert.Contains(t, out, "-90.00")
}

func TestConvolutionCommands(t *testing.T) {
	out, err := execute(t, "", "overlap-save", "1,2,3,4", "-H", "1,1", "-n", "3", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7, 4, 0}, reals(decodeResult(t, out).Records))

	out, err = execute(t, "", "overlap-add", "1,2,3,4", "--second", "1,1", "-n", "3", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7, 4}, reals(decodeResult(t, out).Records))

	out, err = execute(t, "", "circular", "--preset", "step", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, reals(decodeResult(t, out).Records))

	out, err = execute(t, "", "linear", "1,2", "1", "--second-preset", "impulse", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1, 0, 0, 0}, reals(decodeResult(t, out).Records))
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "", "dft", "1,,x")
	assert.ErrorIs(t, err, core.ErrParse)

	_, err = execute(t, "", "overlap-add", "1,2", "-H", "1,1,1", "-n", "2")
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = execute(t, "", "overlap-add", "1,2", "-H", "1,1,1")
	assert.ErrorIs(t, err, engine.ErrMissingInput)

	_, err = execute(t, "", "dft", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "", "fft", "--kernel", "mixed-radix")
	assert.ErrorContains(t, err, "unknown FFT kernel")

	_, err = execute(t, "", "dft", "1,2", "--preset", "basic")
	assert.Error(t, err)

	_, err = execute(t, "", "dft", "--preset", "chirp")
	assert.Error(t, err)

	_, err = execute(t, "", "twiddle", "1,2", "-n", "4")
	assert.Error(t, err)

	_, err = execute(t, "", "linear", "1,2", "-H", "1", "-n", "-3")
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestPrecisionFromEnv(t *testing.T) {
	t.Setenv("DFTCALC_PRECISION", "1")
	t.Setenv("DFTCALC_OUTPUT", "json")

	out, err := execute(t, "", "dft", "0.123,0.456")
	require.NoError(t, err)
	assert.Equal(t, 0.6, decodeResult(t, out).Records[0].Re)

	out, err = execute(t, "", "dft", "0.123,0.456", "--precision", "2")
	require.NoError(t, err)
	assert.Equal(t, 0.58, decodeResult(t, out).Records[0].Re)
}

func TestPrecisionClamped(t *testing.T) {
	cfg, err := loadConfig(func() *viper.Viper {
		v := viper.New()
		setDefaults(v)
		v.Set("precision", 20)
		return v
	}())
	require.NoError(t, err)
	assert.Equal(t, core.MaxPrecision, cfg.Precision)

	out, err := execute(t, "", "dft", "1,2", "--precision=-4")
	require.NoError(t, err)
	assert.Contains(t, out, "3")
	assert.NotContains(t, out, "%!")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dftcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nprecision: 2\nkernel: planned\n"), 0o600))

	out, err := execute(t, "", "idft", "1,0,0", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.33, 0.33, 0.33}, reals(decodeResult(t, out).Records))

	_, err = execute(t, "", "dft", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestOpsAndPresets(t *testing.T) {
	out, err := execute(t, "", "ops")
	require.NoError(t, err)
	for _, id := range engine.IDs() {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "Two Sequences + N")

	out, err = execute(t, "", "presets", "-o", "json")
	require.NoError(t, err)
	var presets map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &presets))
	assert.Equal(t, "(1,0), (0,-1), (2,3), (0,0)", presets["basic"])
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "", "generate", "exponential", "-n", "4", "-k", "1")
	require.NoError(t, err)
	assert.Equal(t, "(1,0), (0,1), (-1,0), (0,-1)\n", out)

	out, err = execute(t, "", "generate", "impulse", "-n", "3", "--pos", "1")
	require.NoError(t, err)
	assert.Equal(t, "(0,0), (1,0), (0,0)\n", out)

	a, err := execute(t, "", "generate", "noise", "--seed", "7", "-n", "4")
	require.NoError(t, err)
	b, err := execute(t, "", "generate", "noise", "--seed", "7", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = execute(t, "", "generate", "sawtooth")
	assert.Error(t, err)
}

func TestTerms(t *testing.T) {
	out, err := execute(t, "", "terms", "1,2,3,4", "-k", "1", "-o", "json")
	require.NoError(t, err)

	var view breakdownView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Len(t, view.Terms, 4)
	assert.Equal(t, -2.0, view.Result.Re)
	assert.Equal(t, 2.0, view.Result.Im)
	assert.Equal(t, pair{-2, 2}, view.Terms[3].Partial)

	out, err = execute(t, "", "terms", "1,2,3,4", "-k", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "X[1] = -2.000 + j2.000")
}

func TestBatch(t *testing.T) {
	jobs := `jobs:
  - op: dft
    x: "(1,0), (0,-1), (2,3), (0,0)"
  - op: ola
    x: "1,2,3,4"
    h: "1,1"
    n: 3
  - op: twiddle
    k: 1
    sample: 1
    n: 4
`
	out, err := execute(t, jobs, "batch", "-", "-o", "json", "--workers", "2")
	require.NoError(t, err)

	var results []engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "dft", results[0].Operation)
	assert.Equal(t, []float64{1, 3, 5, 7, 4}, reals(results[1].Records))
	require.NotNil(t, results[2].Twiddle)
	assert.Equal(t, -1.0, results[2].Twiddle.Im)

	out, err = execute(t, jobs, "batch", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "# 1: overlap-add")

	_, err = execute(t, "jobs:\n  - op: dft\n    x: \"1,(2\"\n", "batch", "-")
	assert.ErrorIs(t, err, core.ErrParse)

	_, err = execute(t, "jobs: []\n", "batch", "-")
	assert.ErrorContains(t, err, "no jobs")
}
