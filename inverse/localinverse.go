package inverse

import (
	"math"

	"github.com/katalvlaran/localinv/approx"
	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/linalg"
)

// LocalInverse is the user-facing artifact of the pipeline: a local
// homeomorphism with source the open ball B(base, ε), target the open ball
// B(f(base), (1/N − c)·ε), forward map f and inverse map the contraction
// solve.
//
// Invariants (within solver tolerance, tested in §round-trip):
//
//	Inverse(Forward(x)) = x  for x in the source
//	Forward(Inverse(y)) = y  for y in the target
//
// Both directions are continuous: f is Lipschitz with ‖A‖ + c and the
// inverse is Lipschitz with (1/N − c)⁻¹ — the anti-Lipschitz constant of f
// transferred to the section. The handle is immutable and owns nothing;
// vectors it returns belong to the caller.
type LocalInverse struct {
	w    *approx.Witness
	base linalg.Vec
	fb   linalg.Vec
	eps  float64
	opts []fixpoint.Option
}

// BuildLocalInverse assembles the handle for the witness w around a base
// point, with working radius ε.
//
// Requirements checked here, all-or-nothing (no partial handle):
//   - w non-nil (ErrNilWitness); ε positive and finite (ErrBadRadius);
//   - base of the right dimension and inside the domain (ErrBadBase);
//   - the closed ball B̄(base, ε) fits inside the witness domain — decided
//     exactly for Ball and Whole domains (ErrDomainTooSmall), assumed for
//     custom Domain implementations.
//
// Solver options apply to every later Inverse call on the handle.
func BuildLocalInverse(w *approx.Witness, base linalg.Vec, eps float64, opts ...fixpoint.Option) (*LocalInverse, error) {
	if w == nil {
		return nil, ErrNilWitness
	}
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, ErrBadRadius
	}
	if base.Dim() != w.Iso().Dim() || !w.Domain().Contains(base) {
		return nil, ErrBadBase
	}
	if !ballFits(w.Domain(), base, eps) {
		return nil, ErrDomainTooSmall
	}

	return &LocalInverse{
		w:    w,
		base: base.Clone(),
		fb:   w.F(base),
		eps:  eps,
		opts: opts,
	}, nil
}

// Source returns the open ball the forward map is certified on.
func (h *LocalInverse) Source() approx.Ball {
	return approx.OpenBall(h.base, h.eps)
}

// Target returns the open image ball the inverse map is certified on:
// radius (1/N − c)·ε around f(base).
func (h *LocalInverse) Target() approx.Ball {
	return approx.OpenBall(h.fb, SurjectivityRadius(h.w, h.eps))
}

// MapSource reports membership in the source ball.
func (h *LocalInverse) MapSource(x linalg.Vec) bool { return h.Source().Contains(x) }

// MapTarget reports membership in the target ball.
func (h *LocalInverse) MapTarget(y linalg.Vec) bool { return h.Target().Contains(y) }

// Forward evaluates f. Meaningful on the source ball; the handle does not
// police arguments beyond dimension (f itself is total).
func (h *LocalInverse) Forward(x linalg.Vec) linalg.Vec { return h.w.F(x) }

// Inverse solves f(x) = y for the unique x in the closed working ball.
// Valid for y up to the closed target ball (ErrOutOfReach beyond); returns
// the solver stats of the underlying contraction run.
func (h *LocalInverse) Inverse(y linalg.Vec) (linalg.Vec, fixpoint.Stats, error) {
	return InvertAt(h.w, h.base, h.eps, y, h.opts...)
}

// Witness returns the underlying approximation witness.
func (h *LocalInverse) Witness() *approx.Witness { return h.w }

// Base returns a copy of the base point.
func (h *LocalInverse) Base() linalg.Vec { return h.base.Clone() }

// DerivativeInv returns a copy of A⁻¹ — given a strict-derivative witness,
// the derivative of the inverse map at f(base), and the unique candidate:
// any g with g(f(x)) = x near the base has this same derivative there,
// since composing with the Lipschitz inverse preserves the little-o
// estimate.
func (h *LocalInverse) DerivativeInv() *linalg.Dense { return h.w.Iso().Inverse() }

// ballFits decides B̄(center, eps) ⊆ dom for the domain shapes the package
// knows; unknown implementations are trusted (documented precondition).
func ballFits(dom approx.Domain, center linalg.Vec, eps float64) bool {
	switch d := dom.(type) {
	case approx.Whole:
		return true
	case approx.Ball:
		reach := center.Dist(d.Center) + eps
		if d.Open {
			return reach < d.Radius
		}

		return reach <= d.Radius
	default:
		return true
	}
}
