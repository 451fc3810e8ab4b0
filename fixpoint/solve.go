package fixpoint

import "math"

// Solve runs the Banach iteration x ← step(x) from x0 until one step moves
// less than the tolerance, returning the (approximate) fixed point.
//
// Preconditions (the caller's, validated where possible):
//   - step maps a nonempty complete subset into itself and contracts with
//     Lipschitz rate < 1 under dist on that subset. Completeness and the
//     self-mapping property cannot be checked here; the upstream ball
//     construction establishes them before calling.
//   - 0 ≤ rate < 1 (ErrBadRate otherwise).
//
// Termination: convergence when dist(x, step(x)) ≤ Tol — in particular a
// starting point that is already fixed (e.g. the single point of a trivial
// space) returns after one application without iterating. Otherwise the
// iteration runs to min(MaxIter, ceil(log(Tol/d₀)/log(rate))) steps and
// reports ErrNoConvergence past that, never a silent partial answer.
//
// The error return carries the zero value of P; no partial iterate leaks.
//
// Complexity: O(k) applications of step, k ≤ the cap above.
func Solve[P any](step func(P) P, dist func(P, P) float64, x0 P, rate float64, opts ...Option) (P, Stats, error) {
	var zero P
	if step == nil {
		return zero, Stats{}, ErrNilStep
	}
	if dist == nil {
		return zero, Stats{}, ErrNilDist
	}
	if rate < 0 || rate >= 1 || math.IsNaN(rate) {
		return zero, Stats{}, ErrBadRate
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	x := x0
	next := step(x)
	d := dist(x, next)
	if d <= o.Tol {
		return next, Stats{Iterations: 1, Residual: d}, nil
	}

	limit := o.MaxIter
	if rate > 0 {
		// Geometric envelope: after k more steps the displacement is at
		// most d·rateᵏ, so k = ceil(log(Tol/d)/log(rate)) suffices. The +1
		// absorbs rounding at the boundary.
		k := int(math.Ceil(math.Log(o.Tol/d)/math.Log(rate))) + 1
		if k > 0 && k < limit {
			limit = k
		}
	}

	iters := 1
	for i := 0; i < limit; i++ {
		x = next
		next = step(x)
		d = dist(x, next)
		iters++
		if d <= o.Tol {
			return next, Stats{Iterations: iters, Residual: d}, nil
		}
	}

	return zero, Stats{Iterations: iters, Residual: d}, ErrNoConvergence
}

// APrioriBound returns the Banach a-priori estimate
// dist(x₀, x*) ≤ d₀ / (1 − rate), where d₀ = dist(x₀, step(x₀)): the
// guaranteed distance from a starting point to the fixed point before any
// iteration runs. This is the bound that converts a one-step displacement
// into a containment radius upstream.
func APrioriBound(d0, rate float64) float64 {
	return d0 / (1 - rate)
}
