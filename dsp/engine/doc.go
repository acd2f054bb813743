// Package engine dispatches named transform and convolution operations.
//
// The registry mirrors the operations a front end offers: each Operation
// carries display metadata (name, formula, description) and the inputs it
// requires. Run executes one Request synchronously. Runner adds the
// cancellable boundary: a request runs on a worker goroutine and the caller
// returns as soon as its context is done. RunBatch fans many requests out
// over a bounded errgroup.
package engine
