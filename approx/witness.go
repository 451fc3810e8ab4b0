package approx

import (
	"math"

	"github.com/katalvlaran/localinv/linalg"
)

// Witness records that f approximates the linear isomorphism A on a domain
// with constant c:
//
//	‖f(x) − f(y) − A(x − y)‖ ≤ c·‖x − y‖   for all x, y in the domain.
//
// The bound itself is the caller's precondition (see ApproximatesLinearOn
// for an advisory finite check); the admissibility inequality c < 1/‖A⁻¹‖
// is validated here, once, and every derived constant below relies on it.
//
// A Witness is immutable. Restrict and Weaken return fresh values.
type Witness struct {
	f   func(linalg.Vec) linalg.Vec
	iso *linalg.Iso
	dom Domain
	c   float64
}

// NewWitness validates and assembles a witness.
//
// Validation, in order: non-nil f/iso/domain; c ≥ 0 and finite
// (ErrBadConstant); and admissibility c < 1/‖A⁻¹‖ unless the space is
// trivial (ErrNotAdmissible). Construction is the only entry point, so no
// later operation re-verifies these facts.
func NewWitness(f func(linalg.Vec) linalg.Vec, iso *linalg.Iso, dom Domain, c float64) (*Witness, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if iso == nil {
		return nil, ErrNilIso
	}
	if dom == nil {
		return nil, ErrNilDomain
	}
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, ErrBadConstant
	}
	if iso.Dim() > 0 && c >= invOrInf(iso.InvNorm()) {
		return nil, ErrNotAdmissible
	}

	return &Witness{f: f, iso: iso, dom: dom, c: c}, nil
}

// F evaluates the approximated map.
func (w *Witness) F(x linalg.Vec) linalg.Vec { return w.f(x) }

// Iso returns the reference linear isomorphism.
func (w *Witness) Iso() *linalg.Iso { return w.iso }

// Domain returns the set the bound holds on.
func (w *Witness) Domain() Domain { return w.dom }

// C returns the approximation constant.
func (w *Witness) C() float64 { return w.c }

// Trivial reports whether the underlying space is zero-dimensional (the
// always-admissible fast path).
func (w *Witness) Trivial() bool { return w.iso.Dim() == 0 }

// Restrict returns the same witness on a subset of the domain. The bound
// trivially survives shrinking; the caller is responsible for sub actually
// being a subset.
func (w *Witness) Restrict(sub Domain) (*Witness, error) {
	if sub == nil {
		return nil, ErrNilDomain
	}

	return &Witness{f: w.f, iso: w.iso, dom: sub, c: w.c}, nil
}

// Weaken returns the witness with a larger constant c2 ≥ c. The bound is
// monotone in c, but c2 must itself stay admissible (ErrNotAdmissible) and
// may not shrink c (ErrBadConstant).
func (w *Witness) Weaken(c2 float64) (*Witness, error) {
	if c2 < w.c || math.IsNaN(c2) || math.IsInf(c2, 0) {
		return nil, ErrBadConstant
	}
	if w.iso.Dim() > 0 && c2 >= invOrInf(w.iso.InvNorm()) {
		return nil, ErrNotAdmissible
	}

	return &Witness{f: w.f, iso: w.iso, dom: w.dom, c: c2}, nil
}

// DeviationLipschitz returns the Lipschitz constant of x ↦ f(x) − A(x) on
// the domain: exactly c.
func (w *Witness) DeviationLipschitz() float64 { return w.c }

// Lipschitz returns a Lipschitz constant for f itself on the domain:
// ‖A‖ + c, by the triangle inequality against the linear part.
func (w *Witness) Lipschitz() float64 { return w.iso.Norm() + w.c }

// AntiLipschitz returns K with ‖x − y‖ ≤ K·‖f(x) − f(y)‖ on the domain:
// K = (1/N − c)⁻¹. Injectivity of f on the domain follows. On the trivial
// space the constant is 0 (there is nothing to separate).
func (w *Witness) AntiLipschitz() float64 {
	if w.Trivial() {
		return 0
	}

	return 1 / (invOrInf(w.iso.InvNorm()) - w.c)
}

// ContractionRate returns N·c, the Lipschitz rate of the Newton update map
// on the domain. Admissibility makes it strictly less than 1.
func (w *Witness) ContractionRate() float64 { return w.iso.InvNorm() * w.c }

// SurjectivityRate returns 1/N − c, the factor converting a source-ball
// radius into a guaranteed image-ball radius. It is strictly positive by
// admissibility, and +∞ on the trivial space.
func (w *Witness) SurjectivityRate() float64 {
	return invOrInf(w.iso.InvNorm()) - w.c
}
