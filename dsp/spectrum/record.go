package spectrum

import "github.com/cwbudde/algo-dft/dsp/core"

// Record is one indexed output sample of an engine call.
//
// Re and Im are rounded first; Magnitude and Phase (degrees) are derived from
// the rounded pair and rounded again, so equal records compare equal.
type Record struct {
	Index     int     `json:"index" yaml:"index"`
	Re        float64 `json:"re" yaml:"re"`
	Im        float64 `json:"im" yaml:"im"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Phase     float64 `json:"phase" yaml:"phase"`
}

// Complex returns the record value as a complex number.
func (r Record) Complex() complex128 {
	return complex(r.Re, r.Im)
}

// Records builds result records for values, indexed from 0.
// Only core.WithPrecision is consulted.
func Records(values []complex128, opts ...core.Option) []Record {
	cfg := core.ApplyOptions(opts...)
	rounded := round(values, cfg.Precision)
	mags := Magnitude(rounded)
	phases := Phase(rounded)

	out := make([]Record, len(rounded))
	for i, c := range rounded {
		out[i] = Record{
			Index:     i,
			Re:        real(c),
			Im:        imag(c),
			Magnitude: cfg.Round(mags[i]),
			Phase:     cfg.Round(phases[i]),
		}
	}
	return out
}

// Values extracts the complex values of records, in order.
func Values(records []Record) []complex128 {
	out := make([]complex128, len(records))
	for i, r := range records {
		out[i] = r.Complex()
	}
	return out
}
