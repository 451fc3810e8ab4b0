package inverse

import (
	"math"

	"github.com/katalvlaran/localinv/approx"
	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/linalg"
)

// FromStrictDerivative builds a local inverse of f at the point a from a
// derivative hypothesis alone: fPrime is the (strict) derivative matrix of
// f at a.
//
// This is the two-state lifter: from the unapproximated hypothesis it
// manufactures an approximation witness with the canonical constant
// c = 1/(2N) — admissible by construction, contraction rate exactly 1/2 —
// on some ball around a, then delegates to BuildLocalInverse. Strict
// differentiability says a qualifying neighborhood exists for every
// positive c; a finite implementation cannot decide the bound over a
// continuum, so radii InitialProbeRadius·2⁻ᵏ are probed against the
// deviation bound on a fixed deterministic sample (center, axis points at
// r and r/2, diagonal points) until one passes. Exhausting MaxShrinkSteps
// halvings yields ErrNoNeighborhood.
//
// A non-invertible fPrime fails inside linalg.NewIso with ErrSingular — the
// "construction is the only entry point" guarantee: no handle for x ↦ x³
// at 0 exists, rather than a wrong one.
//
// The trivial space short-circuits: the unique point is its own inverse on
// the whole space.
func FromStrictDerivative(f func(linalg.Vec) linalg.Vec, a linalg.Vec, fPrime *linalg.Dense, opts ...fixpoint.Option) (*LocalInverse, error) {
	if f == nil || fPrime == nil {
		return nil, ErrNilFunc
	}
	if fPrime.Rows() != a.Dim() {
		return nil, ErrBadBase
	}
	iso, err := linalg.NewIso(fPrime)
	if err != nil {
		return nil, err
	}

	if iso.Dim() == 0 {
		w, werr := approx.NewWitness(f, iso, approx.Whole{}, 0)
		if werr != nil {
			return nil, werr
		}

		return BuildLocalInverse(w, a, InitialProbeRadius, opts...)
	}

	c := 1 / (2 * iso.InvNorm())
	r := InitialProbeRadius
	for k := 0; k <= MaxShrinkSteps; k++ {
		if approx.ApproximatesLinearOn(f, iso, c, probePoints(a, r)) {
			w, werr := approx.NewWitness(f, iso, approx.ClosedBall(a, r), c)
			if werr != nil {
				return nil, werr
			}

			return BuildLocalInverse(w, a, r, opts...)
		}
		r /= 2
	}

	return nil, ErrNoNeighborhood
}

// probePoints returns the deterministic sample of B̄(a, r) the lifter
// verifies the deviation bound on: the center, ±r and ±r/2 along each
// axis, and the two diagonal points ±(r/√d)·𝟙. Size 4d + 3.
func probePoints(a linalg.Vec, r float64) []linalg.Vec {
	d := a.Dim()
	pts := make([]linalg.Vec, 0, 4*d+3)
	pts = append(pts, a.Clone())
	for i := 0; i < d; i++ {
		for _, step := range []float64{r, -r, r / 2, -r / 2} {
			p := a.Clone()
			p[i] += step
			pts = append(pts, p)
		}
	}
	diag := r / math.Sqrt(float64(d))
	ones := make(linalg.Vec, d)
	for i := range ones {
		ones[i] = diag
	}
	pts = append(pts, a.Add(ones), a.Sub(ones))

	return pts
}
