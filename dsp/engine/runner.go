package engine

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Runner executes requests behind a cancellable boundary.
type Runner struct {
	log      logrus.FieldLogger
	workers  int
	defaults []core.Option
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for job lifecycle events. Nil is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithWorkers bounds the number of concurrent jobs in RunBatch. Values
// below 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithDefaults sets engine options applied to every request before the
// request's own options.
func WithDefaults(opts ...core.Option) Option {
	return func(r *Runner) {
		r.defaults = append(r.defaults, opts...)
	}
}

// NewRunner creates a Runner. By default it logs nothing and runs
// GOMAXPROCS jobs at once.
func NewRunner(opts ...Option) *Runner {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	r := &Runner{
		log:     silent,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Workers returns the RunBatch concurrency limit.
func (r *Runner) Workers() int {
	return r.workers
}

type outcome struct {
	res Result
	err error
}

// Run executes req on a worker goroutine. It returns ctx.Err() as soon as
// ctx is done; the computation itself is not interrupted and its result is
// discarded.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	log := r.log.WithFields(logrus.Fields{
		"function":  "Run",
		"operation": req.Op,
	})

	if err := ctx.Err(); err != nil {
		log.WithField("error", err.Error()).Debug("Request cancelled before start")
		return Result{}, err
	}

	if len(r.defaults) > 0 {
		req.Options = append(append([]core.Option(nil), r.defaults...), req.Options...)
	}

	start := time.Now()
	done := make(chan outcome, 1)
	go func() {
		res, err := Run(req)
		done <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		log.WithField("error", ctx.Err().Error()).Debug("Request abandoned")
		return Result{}, ctx.Err()
	case out := <-done:
		if out.err != nil {
			log.WithField("error", out.err.Error()).Debug("Request failed")
			return Result{}, out.err
		}
		log.WithFields(logrus.Fields{
			"size":     out.res.Size,
			"duration": time.Since(start),
		}).Debug("Request completed")
		return out.res, nil
	}
}

// RunBatch runs reqs concurrently, at most Workers() at a time. Results
// keep request order. The first failure cancels the remaining requests and
// is returned.
func (r *Runner) RunBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	r.log.WithFields(logrus.Fields{
		"function": "RunBatch",
		"requests": len(reqs),
		"workers":  r.workers,
	}).Debug("Starting batch")

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Run(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d (%s): %w", i, req.Op, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
