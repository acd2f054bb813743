// Command dftcalc computes discrete Fourier transforms and convolutions of
// short complex sequences.
//
// Usage:
//
//	dftcalc <operation> [sequence] [flags]
//
// Examples:
//
//	dftcalc dft "(1,0), (0,-1), (2,3), (0,0)"
//	dftcalc fft --preset complex -n 8 -o json
//	dftcalc twiddle -k 1 --sample 3 -n 8
//	dftcalc overlap-add 1,2,3,4,5 --second 1,-1 -n 4
//	dftcalc ops
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
