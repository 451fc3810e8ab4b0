package approx

import "github.com/katalvlaran/localinv/linalg"

// ApproximatesLinearOn reports whether the defining bound
//
//	‖f(x) − f(y) − A(x − y)‖ ≤ c·‖x − y‖
//
// holds exactly for every pair of the supplied sample. It is an advisory
// check over a finite sample, not a proof over a continuum: callers that
// construct a Witness still assert the bound on the whole domain as a
// precondition. Typical use is test scaffolding and the shrinking-radius
// probe of the strict-derivative lifter.
//
// nil f or iso, or a sample with points of mismatched dimension, yields
// false. Complexity: O(s²) evaluations of f for s sample points (each f
// value is computed once and cached).
func ApproximatesLinearOn(f func(linalg.Vec) linalg.Vec, iso *linalg.Iso, c float64, sample []linalg.Vec) bool {
	if f == nil || iso == nil || c < 0 {
		return false
	}
	dim := iso.Dim()
	fx := make([]linalg.Vec, len(sample))
	for i, x := range sample {
		if x.Dim() != dim {
			return false
		}
		fx[i] = f(x)
		if fx[i].Dim() != dim || !fx[i].IsFinite() {
			return false
		}
	}
	for i := range sample {
		for j := i + 1; j < len(sample); j++ {
			diff := sample[i].Sub(sample[j])
			dev := fx[i].Sub(fx[j]).Sub(iso.Apply(diff))
			if dev.Norm() > c*diff.Norm() {
				return false
			}
		}
	}

	return true
}
