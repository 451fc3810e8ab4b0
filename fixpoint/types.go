// Package fixpoint: options, stats and sentinel errors.
//
// Errors (sentinel):
//
//	– ErrNilStep        if the iterated map is nil.
//	– ErrNilDist        if the distance function is nil.
//	– ErrBadRate        if rate ∉ [0, 1).
//	– ErrNoConvergence  if the iteration cap is reached before tolerance.
package fixpoint

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrNilStep indicates that the iterated map is nil.
	ErrNilStep = errors.New("fixpoint: step function is nil")

	// ErrNilDist indicates that the distance function is nil.
	ErrNilDist = errors.New("fixpoint: distance function is nil")

	// ErrBadRate indicates a contraction rate outside [0, 1). A rate of 1
	// or more carries no convergence guarantee at all, so it is rejected
	// up front rather than iterated hopefully.
	ErrBadRate = errors.New("fixpoint: contraction rate must satisfy 0 ≤ rate < 1")

	// ErrNoConvergence indicates the iteration cap was exhausted before
	// one step moved less than the tolerance. Either the supplied rate
	// does not actually bound the map, or float64 resolution ran out.
	ErrNoConvergence = errors.New("fixpoint: iteration cap reached before tolerance")
)

// Defaults for the termination policy. Conservative for float64.
const (
	// DefaultTol is the displacement threshold declaring convergence.
	DefaultTol = 1e-12

	// DefaultMaxIter is the hard cap intersected with the geometric
	// envelope cap derived from the rate.
	DefaultMaxIter = 10_000
)

// Options configures the termination policy of Solve.
//
// Tol     – stop once dist(x, h(x)) ≤ Tol. Must be positive.
// MaxIter – hard iteration cap. Must be positive.
type Options struct {
	Tol     float64
	MaxIter int
}

// Option is a functional option for configuring the solver.
type Option func(*Options)

// WithTol overrides the convergence tolerance.
// Must pass a positive value; zero or negative panics (invalid
// configuration is a programmer error, caught early).
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("fixpoint: WithTol requires tol > 0")
		}
		o.Tol = tol
	}
}

// WithMaxIter overrides the hard iteration cap.
// Must pass a positive value; zero or negative panics.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("fixpoint: WithMaxIter requires n > 0")
		}
		o.MaxIter = n
	}
}

// DefaultOptions returns the default termination policy
// (Tol = 1e-12, MaxIter = 10000).
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

// Stats reports how a solve went.
//
// Iterations – number of applications of the step map.
// Residual   – final one-step displacement dist(x, h(x)).
type Stats struct {
	Iterations int
	Residual   float64
}
