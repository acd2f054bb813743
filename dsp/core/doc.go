// Package core holds the pieces shared by the transform and convolution
// engines: the error taxonomy, rounding and finiteness helpers, complex buffer
// helpers, and the functional options every engine call accepts.
package core
