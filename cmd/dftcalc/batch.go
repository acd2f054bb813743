package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dft/dsp/engine"
	"github.com/cwbudde/algo-dft/dsp/sequence"
)

// batchFile is the YAML job list read by the batch command:
//
//	jobs:
//	  - op: dft
//	    x: "(1,0), (0,-1), (2,3), (0,0)"
//	  - op: overlap-add
//	    x: 1,2,3,4,5
//	    h: 1,-1
//	    n: 4
type batchFile struct {
	Jobs []jobSpec `yaml:"jobs"`
}

type jobSpec struct {
	Op      string `yaml:"op"`
	X       string `yaml:"x"`
	H       string `yaml:"h"`
	N       int    `yaml:"n"`
	K       int    `yaml:"k"`
	Sample  int    `yaml:"sample"`
	Inverse bool   `yaml:"inverse"`
}

func (j jobSpec) request() (engine.Request, error) {
	req := engine.Request{Op: j.Op, Size: j.N, K: j.K, Sample: j.Sample, Inverse: j.Inverse}
	var err error
	if req.X, err = sequence.Parse(j.X); err != nil {
		return engine.Request{}, fmt.Errorf("x: %w", err)
	}
	if req.H, err = sequence.Parse(j.H); err != nil {
		return engine.Request{}, fmt.Errorf("h: %w", err)
	}
	return req, nil
}

func readBatch(r io.Reader) ([]engine.Request, error) {
	var file batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode batch file: %w", err)
	}
	if len(file.Jobs) == 0 {
		return nil, fmt.Errorf("batch file has no jobs")
	}

	reqs := make([]engine.Request, len(file.Jobs))
	for i, job := range file.Jobs {
		req, err := job.request()
		if err != nil {
			return nil, fmt.Errorf("job %d (%s): %w", i, job.Op, err)
		}
		reqs[i] = req
	}
	return reqs, nil
}

func (a *app) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <jobs.yaml|->",
		Short: "Run a YAML list of jobs concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			reqs, err := readBatch(in)
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			results, err := a.runner().RunBatch(ctx, reqs)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"function": "batch",
				"jobs":     len(results),
			}).Info("Batch completed")

			out := a.out(cmd)
			if ok, err := encode(out, a.cfg.Output, results); ok {
				return err
			}
			for i, res := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "# %d: %s\n", i, res.Operation)
				if err := renderResult(out, a.cfg.Output, a.cfg.Precision, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
