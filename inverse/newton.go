package inverse

import (
	"math"

	"github.com/katalvlaran/localinv/approx"
	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/linalg"
)

// NewtonMap returns the update map g_y(x) = x + A⁻¹(y − f(x)) for the
// witness w and target y.
//
// Its fixed points are exactly the preimages of y, it moves a point by at
// most N·dist(f(x), y), and on the witness domain it contracts at rate
// N·c = w.ContractionRate(). The caller restricts it to a closed ball via
// InvertAt; it is never iterated globally.
func NewtonMap(w *approx.Witness, y linalg.Vec) func(linalg.Vec) linalg.Vec {
	iso := w.Iso()

	return func(x linalg.Vec) linalg.Vec {
		return x.Add(iso.ApplyInv(y.Sub(w.F(x))))
	}
}

// SurjectivityRadius converts a source-ball radius ε into the guaranteed
// image-ball radius (1/N − c)·ε: every y within that distance of f(b) has
// a preimage in B̄(b, ε). Monotone increasing in ε; +∞ on the trivial
// space.
func SurjectivityRadius(w *approx.Witness, eps float64) float64 {
	return w.SurjectivityRate() * eps
}

// InvertAt solves f(x) = y for the unique x in the closed ball B̄(base, ε).
//
// The self-mapping license is checked first: y must satisfy
// dist(f(base), y) ≤ (1/N − c)·ε (ErrOutOfReach otherwise). Only then is
// the Newton map handed to the generic contraction solver at rate N·c —
// the combination of the displacement and contraction bounds keeps every
// iterate inside B̄(base, ε), which as a closed ball of ℝⁿ is complete.
//
// Solver options (tolerance, iteration cap) pass through to
// fixpoint.Solve; fixpoint.ErrNoConvergence propagates unchanged.
//
// Errors: ErrNilWitness, ErrBadRadius, ErrBadBase, ErrOutOfReach, and the
// solver's own sentinels.
func InvertAt(w *approx.Witness, base linalg.Vec, eps float64, y linalg.Vec, opts ...fixpoint.Option) (linalg.Vec, fixpoint.Stats, error) {
	if w == nil {
		return nil, fixpoint.Stats{}, ErrNilWitness
	}
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, fixpoint.Stats{}, ErrBadRadius
	}
	if base.Dim() != w.Iso().Dim() || !w.Domain().Contains(base) {
		return nil, fixpoint.Stats{}, ErrBadBase
	}
	if y.Dim() != w.Iso().Dim() {
		return nil, fixpoint.Stats{}, ErrBadBase
	}

	// Maps-into-itself license (trivially satisfied on the trivial space,
	// where the radius is +∞).
	if w.F(base).Dist(y) > SurjectivityRadius(w, eps) {
		return nil, fixpoint.Stats{}, ErrOutOfReach
	}

	return fixpoint.Solve(NewtonMap(w, y), linalg.Vec.Dist, base, w.ContractionRate(), opts...)
}
