package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/dsp/engine"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// encode writes v as JSON or YAML. It reports false for the table format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func renderResult(w io.Writer, format string, precision int, res engine.Result) error {
	if ok, err := encode(w, format, res); ok {
		return err
	}
	if res.Twiddle != nil {
		return renderTwiddle(w, precision, *res.Twiddle)
	}
	return renderRecords(w, precision, res.Records)
}

func renderRecords(w io.Writer, precision int, records []spectrum.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "k\tValue\tRe\tIm\t|X|\tPhase [deg]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.*f\t%.*f\t%.*f\t%.2f\n",
			r.Index,
			sequence.FormatComplex(r.Complex(), precision),
			precision, r.Re,
			precision, r.Im,
			precision, r.Magnitude,
			r.Phase,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func renderTwiddle(w io.Writer, precision int, t dft.Twiddle) error {
	sign := "-"
	if t.Inverse {
		sign = "+"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"W", fmt.Sprintf("W_%d^(%d·%d) = e^(%sj2π·%d·%d/%d)", t.Size, t.K, t.Sample, sign, t.K, t.Sample, t.Size)},
		{"Value", sequence.FormatComplex(t.Complex(), precision)},
		{"Angle [rad]", fmt.Sprintf("%.6f", t.Angle)},
		{"Phase [deg]", fmt.Sprintf("%.2f", t.Phase)},
		{"|W|", fmt.Sprintf("%.*f", precision, t.Magnitude)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

// pair is a complex value in a shape JSON and YAML can encode.
type pair [2]float64

func newPair(c complex128, precision int) pair {
	return pair{core.Round(real(c), precision), core.Round(imag(c), precision)}
}

type termView struct {
	Index   int  `json:"n" yaml:"n"`
	Sample  pair `json:"sample" yaml:"sample,flow"`
	Twiddle pair `json:"twiddle" yaml:"twiddle,flow"`
	Product pair `json:"product" yaml:"product,flow"`
	Partial pair `json:"partial" yaml:"partial,flow"`
}

type breakdownView struct {
	K       int             `json:"k" yaml:"k"`
	Size    int             `json:"size" yaml:"size"`
	Inverse bool            `json:"inverse" yaml:"inverse"`
	Terms   []termView      `json:"terms" yaml:"terms"`
	Sum     pair            `json:"sum" yaml:"sum,flow"`
	Result  spectrum.Record `json:"result" yaml:"result"`
}

func newBreakdownView(b dft.Breakdown, precision int) breakdownView {
	v := breakdownView{
		K:       b.K,
		Size:    b.Size,
		Inverse: b.Inverse,
		Terms:   make([]termView, len(b.Terms)),
		Sum:     newPair(b.Sum, precision),
		Result:  b.Result,
	}
	for i, t := range b.Terms {
		v.Terms[i] = termView{
			Index:   t.Index,
			Sample:  newPair(t.Sample, precision),
			Twiddle: newPair(t.Twiddle, precision),
			Product: newPair(t.Product, precision),
			Partial: newPair(t.Partial, precision),
		}
	}
	return v
}

func renderBreakdown(w io.Writer, format string, precision int, b dft.Breakdown) error {
	if ok, err := encode(w, format, newBreakdownView(b, precision)); ok {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "n\tx[n]\tW\tProduct\tPartial sum\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, term := range b.Terms {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			term.Index,
			sequence.FormatComplex(term.Sample, precision),
			sequence.FormatComplex(term.Twiddle, precision),
			sequence.FormatComplex(term.Product, precision),
			sequence.FormatComplex(term.Partial, precision),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "X[%d] = %s  |X| = %.*f  phase = %.2f deg\n",
		b.K, sequence.FormatComplex(b.Result.Complex(), precision), precision, b.Result.Magnitude, b.Result.Phase)
	return err
}
